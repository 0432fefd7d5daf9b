package store

import (
	"context"
	"database/sql"

	"github.com/dayoun/memopad/internal/domain"
	"github.com/google/uuid"
)

// MemoStore defines the interface for memo persistence.
type MemoStore interface {
	// List retrieves all memos ordered by creation time, newest first.
	// An empty store yields an empty slice, never nil.
	List(ctx context.Context) ([]*domain.Memo, error)

	// Create inserts a new memo from the given form and returns the stored
	// memo with its generated id and timestamps. Absent tags default to an
	// empty slice. Returns validation errors from the domain form if the
	// data is invalid.
	Create(ctx context.Context, form domain.MemoForm) (*domain.Memo, error)

	// Update replaces the editable fields of the memo matching id and
	// returns the stored memo with its refreshed updated_at timestamp.
	// Returns ErrMemoNotFound if no row matches.
	Update(ctx context.Context, id uuid.UUID, form domain.MemoForm) (*domain.Memo, error)

	// Delete removes the memo matching id. Deleting an id that does not
	// exist is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new MemoStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) MemoStore
}
