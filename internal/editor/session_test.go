package editor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dayoun/memopad/internal/domain"
	"github.com/dayoun/memopad/internal/editor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository records repository calls and returns configured results.
type fakeRepository struct {
	updateCalls  []updateCall
	deleteCalls  []uuid.UUID
	updateResult *domain.Memo
	updateErr    error
	deleteErr    error
}

type updateCall struct {
	id   uuid.UUID
	form domain.MemoForm
}

func (f *fakeRepository) UpdateMemo(
	_ context.Context,
	id uuid.UUID,
	form domain.MemoForm,
) (*domain.Memo, error) {
	f.updateCalls = append(f.updateCalls, updateCall{id: id, form: form})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResult != nil {
		return f.updateResult, nil
	}
	return &domain.Memo{
		ID:       id,
		Title:    form.Title,
		Content:  form.Content,
		Category: form.Category,
		Tags:     form.Tags,
	}, nil
}

func (f *fakeRepository) DeleteMemo(_ context.Context, id uuid.UUID) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

// confirmYes and confirmNo are canned confirmers for delete prompts.
var (
	confirmYes = editor.ConfirmerFunc(func(string) bool { return true })
	confirmNo  = editor.ConfirmerFunc(func(string) bool { return false })
)

func testMemo() *domain.Memo {
	return &domain.Memo{
		ID:       uuid.New(),
		Title:    "Groceries",
		Content:  "milk",
		Category: domain.CategoryPersonal,
		Tags:     []string{"home"},
	}
}

func TestSession_OpenAndClose(t *testing.T) {
	t.Parallel()

	t.Run("starts closed", func(t *testing.T) {
		t.Parallel()

		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		assert.Equal(t, editor.StateClosed, s.State())
		assert.Nil(t, s.Memo())
	})

	t.Run("open with nil memo is ignored", func(t *testing.T) {
		t.Parallel()

		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.Open(nil)
		assert.Equal(t, editor.StateClosed, s.State())
	})

	t.Run("open enters viewing", func(t *testing.T) {
		t.Parallel()

		memo := testMemo()
		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.Open(memo)

		assert.Equal(t, editor.StateViewing, s.State())
		assert.Equal(t, memo, s.Memo())
	})

	t.Run("close discards the session", func(t *testing.T) {
		t.Parallel()

		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.Open(testMemo())
		s.Close()

		assert.Equal(t, editor.StateClosed, s.State())
		assert.Nil(t, s.Memo())
	})

	t.Run("escape closes while open and is inert while closed", func(t *testing.T) {
		t.Parallel()

		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.Escape()
		assert.Equal(t, editor.StateClosed, s.State())

		s.Open(testMemo())
		s.Escape()
		assert.Equal(t, editor.StateClosed, s.State())
	})

	t.Run("background click closes, content click does not", func(t *testing.T) {
		t.Parallel()

		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.Open(testMemo())

		s.BackgroundClick(true) // landed on the content area
		assert.Equal(t, editor.StateViewing, s.State())

		s.BackgroundClick(false)
		assert.Equal(t, editor.StateClosed, s.State())
	})

	t.Run("close while editing discards the draft silently", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())
		s.StartEdit()
		s.SetTitle("unsaved work")

		s.Close()

		assert.Equal(t, editor.StateClosed, s.State())
		assert.Empty(t, repo.updateCalls, "closing must not save")
	})
}

func TestSession_EditLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("start edit copies editable fields into the draft", func(t *testing.T) {
		t.Parallel()

		memo := testMemo()
		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.Open(memo)
		s.StartEdit()

		require.Equal(t, editor.StateEditing, s.State())
		draft := s.Draft()
		assert.Equal(t, memo.Title, draft.Title)
		assert.Equal(t, memo.Content, draft.Content)
		assert.Equal(t, memo.Category, draft.Category)
		assert.Equal(t, memo.Tags, draft.Tags)
	})

	t.Run("start edit is inert while closed", func(t *testing.T) {
		t.Parallel()

		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.StartEdit()
		assert.Equal(t, editor.StateClosed, s.State())
	})

	t.Run("draft mutations never touch the memo", func(t *testing.T) {
		t.Parallel()

		memo := testMemo()
		s := editor.NewSession(&fakeRepository{}, confirmYes, nil)
		s.Open(memo)
		s.StartEdit()

		s.SetTitle("Errands")
		s.SetContent("milk, eggs")
		s.SetCategory(domain.CategoryWork)

		assert.Equal(t, "Groceries", memo.Title)
		assert.Equal(t, "milk", memo.Content)
		assert.Equal(t, "Errands", s.Draft().Title)
		assert.Equal(t, "milk, eggs", s.Draft().Content)
		assert.Equal(t, domain.CategoryWork, s.Draft().Category)
	})

	t.Run("cancel discards the draft without a repository call", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())
		s.StartEdit()
		s.SetTitle("Errands")

		s.Cancel()

		assert.Equal(t, editor.StateViewing, s.State())
		assert.Empty(t, repo.updateCalls)

		// Re-entering edit starts from the memo again, not the old draft.
		s.StartEdit()
		assert.Equal(t, "Groceries", s.Draft().Title)
	})
}

func TestSession_Tags(t *testing.T) {
	t.Parallel()

	newEditingSession := func(repo *fakeRepository) *editor.Session {
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())
		s.StartEdit()
		return s
	}

	t.Run("add appends and clears the input", func(t *testing.T) {
		t.Parallel()

		s := newEditingSession(&fakeRepository{})
		s.SetTagInput("urgent")
		s.AddTag()

		assert.Equal(t, []string{"home", "urgent"}, s.Draft().Tags)
		assert.Empty(t, s.TagInput())
	})

	t.Run("add trims whitespace", func(t *testing.T) {
		t.Parallel()

		s := newEditingSession(&fakeRepository{})
		s.SetTagInput("  urgent  ")
		s.AddTag()

		assert.Equal(t, []string{"home", "urgent"}, s.Draft().Tags)
	})

	t.Run("adding the same tag twice yields one entry", func(t *testing.T) {
		t.Parallel()

		s := newEditingSession(&fakeRepository{})
		s.SetTagInput("work")
		s.AddTag()
		s.SetTagInput("work")
		s.AddTag()

		assert.Equal(t, []string{"home", "work"}, s.Draft().Tags)
	})

	t.Run("duplicate match is case-sensitive", func(t *testing.T) {
		t.Parallel()

		s := newEditingSession(&fakeRepository{})
		s.SetTagInput("Home")
		s.AddTag()

		assert.Equal(t, []string{"home", "Home"}, s.Draft().Tags)
	})

	t.Run("empty or blank input is ignored", func(t *testing.T) {
		t.Parallel()

		s := newEditingSession(&fakeRepository{})
		s.SetTagInput("   ")
		s.AddTag()

		assert.Equal(t, []string{"home"}, s.Draft().Tags)
	})

	t.Run("remove filters by exact match", func(t *testing.T) {
		t.Parallel()

		s := newEditingSession(&fakeRepository{})
		s.SetTagInput("urgent")
		s.AddTag()
		s.RemoveTag("home")

		assert.Equal(t, []string{"urgent"}, s.Draft().Tags)
	})

	t.Run("removing an absent tag is a no-op", func(t *testing.T) {
		t.Parallel()

		s := newEditingSession(&fakeRepository{})
		s.RemoveTag("nope")

		assert.Equal(t, []string{"home"}, s.Draft().Tags)
	})
}

func TestSession_Save(t *testing.T) {
	t.Parallel()

	t.Run("whitespace-only title blocks the save locally", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())
		s.StartEdit()
		s.SetTitle("   ")

		err := s.Save(context.Background())

		assert.ErrorIs(t, err, domain.ErrEmptyMemoTitle)
		assert.Empty(t, repo.updateCalls, "validation failures must not reach the store")
		assert.Equal(t, editor.StateEditing, s.State())
		assert.Equal(t, "   ", s.Draft().Title, "draft stays intact")
	})

	t.Run("empty content blocks the save locally", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())
		s.StartEdit()
		s.SetContent("")

		err := s.Save(context.Background())

		assert.ErrorIs(t, err, domain.ErrEmptyMemoContent)
		assert.Empty(t, repo.updateCalls)
		assert.Equal(t, editor.StateEditing, s.State())
	})

	t.Run("successful save returns to viewing with the updated memo", func(t *testing.T) {
		t.Parallel()

		memo := testMemo()
		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(memo)
		s.StartEdit()
		s.SetContent("milk, eggs")
		s.SetTagInput("urgent")
		s.AddTag()

		err := s.Save(context.Background())
		require.NoError(t, err)

		require.Len(t, repo.updateCalls, 1, "save issues exactly one update")
		call := repo.updateCalls[0]
		assert.Equal(t, memo.ID, call.id)
		assert.Equal(t, "Groceries", call.form.Title)
		assert.Equal(t, "milk, eggs", call.form.Content)
		assert.Equal(t, domain.CategoryPersonal, call.form.Category)
		assert.Equal(t, []string{"home", "urgent"}, call.form.Tags)

		assert.Equal(t, editor.StateViewing, s.State())
		assert.Equal(t, "milk, eggs", s.Memo().Content)
	})

	t.Run("repository failure keeps the draft and the editing state", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")
		repo := &fakeRepository{updateErr: storeErr}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())
		s.StartEdit()
		s.SetContent("milk, eggs")

		err := s.Save(context.Background())

		assert.ErrorIs(t, err, storeErr, "store errors propagate unchanged")
		assert.Equal(t, editor.StateEditing, s.State())
		assert.Equal(t, "milk, eggs", s.Draft().Content)
	})

	t.Run("save while not editing is a no-op", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())

		require.NoError(t, s.Save(context.Background()))
		assert.Empty(t, repo.updateCalls)
	})
}

func TestSession_Delete(t *testing.T) {
	t.Parallel()

	t.Run("confirmed delete closes the session", func(t *testing.T) {
		t.Parallel()

		memo := testMemo()
		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(memo)

		err := s.Delete(context.Background())
		require.NoError(t, err)

		require.Len(t, repo.deleteCalls, 1)
		assert.Equal(t, memo.ID, repo.deleteCalls[0])
		assert.Equal(t, editor.StateClosed, s.State())
	})

	t.Run("declined confirmation makes no repository call", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmNo, nil)
		s.Open(testMemo())

		err := s.Delete(context.Background())
		require.NoError(t, err)

		assert.Empty(t, repo.deleteCalls)
		assert.Equal(t, editor.StateViewing, s.State())
	})

	t.Run("repository failure keeps the session open", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")
		repo := &fakeRepository{deleteErr: storeErr}
		s := editor.NewSession(repo, confirmYes, nil)
		s.Open(testMemo())
		s.StartEdit()

		err := s.Delete(context.Background())

		assert.ErrorIs(t, err, storeErr)
		assert.Equal(t, editor.StateEditing, s.State())
	})

	t.Run("delete while closed is a no-op", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRepository{}
		s := editor.NewSession(repo, confirmYes, nil)

		require.NoError(t, s.Delete(context.Background()))
		assert.Empty(t, repo.deleteCalls)
	})
}
