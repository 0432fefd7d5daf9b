package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Memo
var (
	ErrEmptyMemoTitle   = errors.New("memo title cannot be empty")
	ErrEmptyMemoContent = errors.New("memo content cannot be empty")
)

// Memo represents a persisted note. The id and timestamps are owned by the
// store: the id is assigned on insert and updated_at is refreshed by the
// database on every write.
type Memo struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  Category  `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EditableFields returns a MemoForm holding a copy of the memo's editable
// fields. The copy shares no tag slice with the memo, so mutating it never
// touches the original.
func (m *Memo) EditableFields() MemoForm {
	tags := make([]string, len(m.Tags))
	copy(tags, m.Tags)
	return MemoForm{
		Title:    m.Title,
		Content:  m.Content,
		Category: m.Category,
		Tags:     tags,
	}
}

// MemoForm carries the editable fields of a memo: what a client submits on
// create and update. It never includes the id or timestamps.
type MemoForm struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category Category `json:"category"`
	Tags     []string `json:"tags"`
}

// Normalize returns a copy of the form with absent tags defaulted to an
// empty slice.
func (f MemoForm) Normalize() MemoForm {
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return f
}

// Validate checks that the form can be saved. Title and content must be
// non-empty after trimming whitespace.
func (f MemoForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrEmptyMemoTitle
	}
	if strings.TrimSpace(f.Content) == "" {
		return ErrEmptyMemoContent
	}
	return nil
}
