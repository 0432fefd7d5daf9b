package editor

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dayoun/memopad/internal/domain"
	"github.com/google/uuid"
)

// State represents where the session is in its lifecycle.
type State string

// Possible session states
const (
	// StateClosed: no memo is open. All events are inert.
	StateClosed State = "closed"

	// StateViewing: a memo is open read-only.
	StateViewing State = "viewing"

	// StateEditing: a draft of the memo's editable fields is being mutated.
	StateEditing State = "editing"
)

// Repository is the narrow persistence surface a session needs. The memo
// service satisfies it, as does any test fake.
type Repository interface {
	UpdateMemo(ctx context.Context, id uuid.UUID, form domain.MemoForm) (*domain.Memo, error)
	DeleteMemo(ctx context.Context, id uuid.UUID) error
}

// Confirmer answers a blocking yes/no prompt. Delete asks through it
// before touching the repository.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Session is the editing state machine for a single memo at a time.
// It is driven entirely by user-triggered events and does not defend
// against overlapping repository calls; one save or delete is expected
// to be outstanding at a time.
type Session struct {
	repo    Repository
	confirm Confirmer
	logger  *slog.Logger

	state    State
	memo     *domain.Memo
	draft    domain.MemoForm
	tagInput string
}

// NewSession creates a closed session backed by the given repository and
// confirmer. If logger is nil, the process default logger is used.
func NewSession(repo Repository, confirm Confirmer, logger *slog.Logger) *Session {
	if repo == nil {
		panic("repo cannot be nil")
	}
	if confirm == nil {
		panic("confirm cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		repo:    repo,
		confirm: confirm,
		logger:  logger.With(slog.String("component", "editor_session")),
		state:   StateClosed,
	}
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Memo returns the currently open memo, or nil while closed.
func (s *Session) Memo() *domain.Memo { return s.memo }

// Draft returns the current draft. Meaningful only while editing.
func (s *Session) Draft() domain.MemoForm { return s.draft }

// TagInput returns the pending tag-entry text.
func (s *Session) TagInput() string { return s.tagInput }

// Open opens the given memo for viewing. A nil memo is ignored: the
// session is never entered without one.
func (s *Session) Open(memo *domain.Memo) {
	if memo == nil {
		return
	}
	s.memo = memo
	s.state = StateViewing
	s.draft = domain.MemoForm{}
	s.tagInput = ""
}

// StartEdit moves from viewing to editing, initializing the draft as a
// copy of the memo's editable fields. Inert outside the viewing state.
func (s *Session) StartEdit() {
	if s.state != StateViewing {
		return
	}
	s.draft = s.memo.EditableFields()
	s.tagInput = ""
	s.state = StateEditing
}

// SetTitle mutates the draft title. Inert unless editing.
func (s *Session) SetTitle(title string) {
	if s.state != StateEditing {
		return
	}
	s.draft.Title = title
}

// SetContent mutates the draft content. Inert unless editing.
func (s *Session) SetContent(content string) {
	if s.state != StateEditing {
		return
	}
	s.draft.Content = content
}

// SetCategory mutates the draft category. Inert unless editing.
func (s *Session) SetCategory(category domain.Category) {
	if s.state != StateEditing {
		return
	}
	s.draft.Category = category
}

// SetTagInput replaces the pending tag-entry text. Inert unless editing.
func (s *Session) SetTagInput(input string) {
	if s.state != StateEditing {
		return
	}
	s.tagInput = input
}

// AddTag commits the pending tag input to the draft: the input is trimmed,
// ignored if empty or already present (case-sensitive exact match), and
// otherwise appended to the end of the tag list. The input is cleared only
// on a successful add.
func (s *Session) AddTag() {
	if s.state != StateEditing {
		return
	}

	tag := strings.TrimSpace(s.tagInput)
	if tag == "" {
		return
	}
	for _, existing := range s.draft.Tags {
		if existing == tag {
			return
		}
	}

	s.draft.Tags = append(s.draft.Tags, tag)
	s.tagInput = ""
}

// RemoveTag filters the named tag out of the draft by exact string match,
// removing all occurrences. Removing an absent tag is a no-op.
func (s *Session) RemoveTag(tag string) {
	if s.state != StateEditing {
		return
	}

	tags := s.draft.Tags[:0:0]
	for _, existing := range s.draft.Tags {
		if existing != tag {
			tags = append(tags, existing)
		}
	}
	s.draft.Tags = tags
}

// Cancel discards the draft and returns to viewing without any repository
// call. Unsaved edits are dropped silently.
func (s *Session) Cancel() {
	if s.state != StateEditing {
		return
	}
	s.draft = domain.MemoForm{}
	s.tagInput = ""
	s.state = StateViewing
}

// Save validates the draft and persists it through the repository. A draft
// whose trimmed title or content is empty fails validation before any
// repository call and the session stays in editing. On repository failure
// the error propagates unchanged and the draft stays intact, so the user
// can retry. On success the returned memo becomes the current one and the
// session returns to viewing.
func (s *Session) Save(ctx context.Context) error {
	if s.state != StateEditing {
		return nil
	}

	if err := s.draft.Validate(); err != nil {
		s.logger.Debug("save blocked by validation",
			slog.String("error", err.Error()),
			slog.String("memo_id", s.memo.ID.String()))
		return err
	}

	updated, err := s.repo.UpdateMemo(ctx, s.memo.ID, s.draft.Normalize())
	if err != nil {
		s.logger.Error("failed to save memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", s.memo.ID.String()))
		return err
	}

	s.memo = updated
	s.draft = domain.MemoForm{}
	s.tagInput = ""
	s.state = StateViewing
	return nil
}

// Delete asks for confirmation and, if granted, removes the current memo
// through the repository. A declined prompt makes no repository call. On
// success the session closes; on failure the error propagates and the
// session stays open in its current state.
func (s *Session) Delete(ctx context.Context) error {
	if s.state == StateClosed {
		return nil
	}

	if !s.confirm.Confirm("Delete this memo?") {
		return nil
	}

	if err := s.repo.DeleteMemo(ctx, s.memo.ID); err != nil {
		s.logger.Error("failed to delete memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", s.memo.ID.String()))
		return err
	}

	s.close()
	return nil
}

// Close closes the session from any state. Any draft is discarded silently
// without confirmation.
func (s *Session) Close() {
	if s.state == StateClosed {
		return
	}
	s.close()
}

// Escape handles the Escape key: closes the session while open, inert
// while closed.
func (s *Session) Escape() {
	s.Close()
}

// BackgroundClick handles a click on the modal backdrop. Clicks landing on
// the content area do not close; clicks on the background do. Inert while
// closed.
func (s *Session) BackgroundClick(contentClicked bool) {
	if contentClicked {
		return
	}
	s.Close()
}

func (s *Session) close() {
	s.memo = nil
	s.draft = domain.MemoForm{}
	s.tagInput = ""
	s.state = StateClosed
}
