package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dayoun/memopad/internal/api/shared"
	"github.com/dayoun/memopad/internal/domain"
	"github.com/dayoun/memopad/internal/platform/logger"
	"github.com/dayoun/memopad/internal/service"
	"github.com/go-playground/validator/v10"
)

// MemoFormRequest represents the request body for creating or updating a
// memo. Tags may be omitted and default to an empty list. The category is
// restricted to the known enumeration at this edge; the store itself
// accepts free text.
type MemoFormRequest struct {
	Title    string   `json:"title"    validate:"required,min=1"`
	Content  string   `json:"content"  validate:"required,min=1"`
	Category string   `json:"category" validate:"required,oneof=personal work study idea other"`
	Tags     []string `json:"tags"`
}

// MemoResponse represents the response data for a memo.
type MemoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemoHandler handles memo-related HTTP requests.
type MemoHandler struct {
	memoService service.MemoService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewMemoHandler creates a new MemoHandler.
func NewMemoHandler(memoService service.MemoService, logger *slog.Logger) *MemoHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoHandler{
		memoService: memoService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "memo_handler")),
	}
}

// ListMemos handles GET /api/memos requests.
// Memos come back newest first; an empty store yields an empty array.
func (h *MemoHandler) ListMemos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	memos, err := h.memoService.ListMemos(r.Context())
	if err != nil {
		log.Error("failed to list memos", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]MemoResponse, 0, len(memos))
	for _, memo := range memos {
		response = append(response, memoToResponse(memo))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateMemo handles POST /api/memos requests.
func (h *MemoHandler) CreateMemo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req MemoFormRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	memo, err := h.memoService.CreateMemo(r.Context(), formFromRequest(req))
	if err != nil {
		log.Error("failed to create memo", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, memoToResponse(memo))
}

// UpdateMemo handles PUT /api/memos/{id} requests.
func (h *MemoHandler) UpdateMemo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid memo ID")
		return
	}

	var req MemoFormRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	memo, err := h.memoService.UpdateMemo(r.Context(), id, formFromRequest(req))
	if err != nil {
		log.Error("failed to update memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memoToResponse(memo))
}

// DeleteMemo handles DELETE /api/memos/{id} requests.
// Deleting an id that no longer exists still returns 204.
func (h *MemoHandler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid memo ID")
		return
	}

	if err := h.memoService.DeleteMemo(r.Context(), id); err != nil {
		log.Error("failed to delete memo",
			slog.String("error", err.Error()),
			slog.String("memo_id", id.String()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// formFromRequest converts a request body into a domain form.
func formFromRequest(req MemoFormRequest) domain.MemoForm {
	return domain.MemoForm{
		Title:    req.Title,
		Content:  req.Content,
		Category: domain.Category(req.Category),
		Tags:     req.Tags,
	}.Normalize()
}

// memoToResponse converts a domain.Memo to a MemoResponse.
func memoToResponse(memo *domain.Memo) MemoResponse {
	return MemoResponse{
		ID:        memo.ID.String(),
		Title:     memo.Title,
		Content:   memo.Content,
		Category:  string(memo.Category),
		Tags:      memo.Tags,
		CreatedAt: memo.CreatedAt,
		UpdatedAt: memo.UpdatedAt,
	}
}
