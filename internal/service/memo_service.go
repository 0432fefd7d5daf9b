package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayoun/memopad/internal/domain"
	"github.com/dayoun/memopad/internal/store"
	"github.com/google/uuid"
)

// Common sentinel errors for MemoService
var (
	// ErrMemoNotFound indicates that the memo does not exist
	ErrMemoNotFound = errors.New("memo not found")
)

// MemoService provides memo-related operations.
type MemoService interface {
	// ListMemos retrieves all memos, newest first.
	ListMemos(ctx context.Context) ([]*domain.Memo, error)

	// CreateMemo creates a new memo from the given form and returns the
	// stored memo.
	CreateMemo(ctx context.Context, form domain.MemoForm) (*domain.Memo, error)

	// UpdateMemo replaces the editable fields of the memo matching id.
	// Returns ErrMemoNotFound if the memo does not exist.
	UpdateMemo(ctx context.Context, id uuid.UUID, form domain.MemoForm) (*domain.Memo, error)

	// DeleteMemo removes the memo matching id. Deleting a memo that no
	// longer exists is not an error.
	DeleteMemo(ctx context.Context, id uuid.UUID) error
}

// MemoServiceError wraps errors from the memo service with context.
type MemoServiceError struct {
	// Operation is the operation that failed (e.g., "create_memo")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for MemoServiceError.
func (e *MemoServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("memo service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("memo service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *MemoServiceError) Unwrap() error {
	return e.Err
}

// newMemoServiceError wraps err with operation context. Domain validation
// errors and not-found sentinels pass through unchanged so callers can
// match them directly; everything else is wrapped.
func newMemoServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrEmptyMemoTitle) || errors.Is(err, domain.ErrEmptyMemoContent) {
		return err
	}

	if errors.Is(err, store.ErrMemoNotFound) {
		return ErrMemoNotFound
	}

	return &MemoServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// memoServiceImpl implements the MemoService interface
type memoServiceImpl struct {
	memoStore store.MemoStore
	logger    *slog.Logger
}

// NewMemoService creates a new MemoService backed by the given store.
// It returns an error if the store is nil. If logger is nil, the process
// default logger is used.
func NewMemoService(memoStore store.MemoStore, logger *slog.Logger) (MemoService, error) {
	if memoStore == nil {
		return nil, &MemoServiceError{
			Operation: "create_service",
			Message:   "memoStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &memoServiceImpl{
		memoStore: memoStore,
		logger:    logger.With(slog.String("component", "memo_service")),
	}, nil
}

// ListMemos implements MemoService.ListMemos
func (s *memoServiceImpl) ListMemos(ctx context.Context) ([]*domain.Memo, error) {
	memos, err := s.memoStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list memos", slog.String("error", err.Error()))
		return nil, newMemoServiceError("list_memos", "store list failed", err)
	}
	return memos, nil
}

// CreateMemo implements MemoService.CreateMemo
// The form is validated before the store is touched: validation failures
// never become store requests.
func (s *memoServiceImpl) CreateMemo(
	ctx context.Context,
	form domain.MemoForm,
) (*domain.Memo, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		s.logger.Debug("memo form rejected", slog.String("error", err.Error()))
		return nil, err
	}

	memo, err := s.memoStore.Create(ctx, form)
	if err != nil {
		s.logger.Error("failed to create memo", slog.String("error", err.Error()))
		return nil, newMemoServiceError("create_memo", "store create failed", err)
	}

	return memo, nil
}

// UpdateMemo implements MemoService.UpdateMemo
func (s *memoServiceImpl) UpdateMemo(
	ctx context.Context,
	id uuid.UUID,
	form domain.MemoForm,
) (*domain.Memo, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		s.logger.Debug("memo form rejected",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return nil, err
	}

	memo, err := s.memoStore.Update(ctx, id, form)
	if err != nil {
		s.logger.Error("failed to update memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return nil, newMemoServiceError("update_memo", "store update failed", err)
	}

	return memo, nil
}

// DeleteMemo implements MemoService.DeleteMemo
func (s *memoServiceImpl) DeleteMemo(ctx context.Context, id uuid.UUID) error {
	if err := s.memoStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return newMemoServiceError("delete_memo", "store delete failed", err)
	}
	return nil
}
