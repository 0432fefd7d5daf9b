package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/dayoun/memopad/internal/domain"
	"github.com/dayoun/memopad/internal/platform/logger"
	"github.com/dayoun/memopad/internal/store"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresMemoStore implements the store.MemoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresMemoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMemoStore creates a new PostgreSQL implementation of the
// MemoStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, the
// process default logger is used.
func NewPostgresMemoStore(db store.DBTX, logger *slog.Logger) *PostgresMemoStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMemoStore{
		db:     db,
		logger: logger.With(slog.String("component", "memo_store")),
	}
}

// Ensure PostgresMemoStore implements store.MemoStore interface
var _ store.MemoStore = (*PostgresMemoStore)(nil)

// WithTx returns a new store instance bound to the given transaction.
func (s *PostgresMemoStore) WithTx(tx *sql.Tx) store.MemoStore {
	return &PostgresMemoStore{
		db:     tx,
		logger: s.logger,
	}
}

// List implements store.MemoStore.List
// It retrieves all memos ordered by creation time, newest first.
// An empty table yields an empty slice, never nil.
func (s *PostgresMemoStore) List(ctx context.Context) ([]*domain.Memo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, category, tags, created_at, updated_at
		FROM memos
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query memos", slog.String("error", err.Error()))
		return nil, store.NewStoreError("memo", "list", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	memos := []*domain.Memo{}
	for rows.Next() {
		memo, err := scanMemo(rows.Scan)
		if err != nil {
			log.Error("failed to scan memo row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("memo", "list", "scan failed", err)
		}
		memos = append(memos, memo)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("memo", "list", "row iteration failed", MapError(err))
	}

	log.Debug("listed memos", slog.Int("count", len(memos)))
	return memos, nil
}

// Create implements store.MemoStore.Create
// It inserts exactly one row from the given form and reads the stored row
// back, so the caller sees the generated id and timestamps.
func (s *PostgresMemoStore) Create(ctx context.Context, form domain.MemoForm) (*domain.Memo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		log.Warn("memo validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO memos (title, content, category, tags)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, content, category, tags, created_at, updated_at
	`

	row := s.db.QueryRowContext(
		ctx,
		query,
		form.Title,
		form.Content,
		string(form.Category),
		pq.Array(form.Tags),
	)

	memo, err := scanMemo(row.Scan)
	if err != nil {
		log.Error("failed to create memo", slog.String("error", err.Error()))
		return nil, store.NewStoreError("memo", "create", "insert failed", MapError(err))
	}

	log.Info("memo created successfully",
		slog.String("memo_id", memo.ID.String()),
		slog.String("category", string(memo.Category)))
	return memo, nil
}

// Update implements store.MemoStore.Update
// It replaces the editable fields of the row matching id. The updated_at
// timestamp is bumped by the database trigger, not by this layer. Exactly
// one row is expected back; zero rows means the memo does not exist and
// store.ErrMemoNotFound is returned.
func (s *PostgresMemoStore) Update(
	ctx context.Context,
	id uuid.UUID,
	form domain.MemoForm,
) (*domain.Memo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		log.Warn("memo validation failed during update",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return nil, err
	}

	query := `
		UPDATE memos
		SET title = $1, content = $2, category = $3, tags = $4
		WHERE id = $5
		RETURNING id, title, content, category, tags, created_at, updated_at
	`

	row := s.db.QueryRowContext(
		ctx,
		query,
		form.Title,
		form.Content,
		string(form.Category),
		pq.Array(form.Tags),
		id,
	)

	memo, err := scanMemo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("memo not found for update", slog.String("memo_id", id.String()))
			return nil, store.ErrMemoNotFound
		}
		log.Error("failed to update memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return nil, store.NewStoreError("memo", "update", "update failed", MapError(err))
	}

	log.Info("memo updated successfully", slog.String("memo_id", memo.ID.String()))
	return memo, nil
}

// Delete implements store.MemoStore.Delete
// It removes the row matching id. Deleting an id that no longer exists is
// not an error: zero affected rows is treated as success, which keeps the
// operation idempotent at the request level.
func (s *PostgresMemoStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM memos WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return store.NewStoreError("memo", "delete", "delete failed", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		return store.NewStoreError("memo", "delete", "rows affected unavailable", MapError(err))
	}

	if rowsAffected == 0 {
		log.Debug("memo already absent on delete", slog.String("memo_id", id.String()))
		return nil
	}

	log.Info("memo deleted successfully", slog.String("memo_id", id.String()))
	return nil
}

// scanMemo reads one memos row through the given scan function. The tags
// column is a text[], decoded via pq.StringArray; a NULL column still comes
// back as an empty slice.
func scanMemo(scan func(dest ...any) error) (*domain.Memo, error) {
	var memo domain.Memo
	var category string
	var tags pq.StringArray

	err := scan(
		&memo.ID,
		&memo.Title,
		&memo.Content,
		&category,
		&tags,
		&memo.CreatedAt,
		&memo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	memo.Category = domain.Category(category)
	memo.Tags = []string(tags)
	if memo.Tags == nil {
		memo.Tags = []string{}
	}
	return &memo, nil
}
