package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"bumpr/internal/delivery/api/response"
	"bumpr/internal/domain/reputation"
	"bumpr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReputationHandlerParams holds dependencies for ReputationHandler, injected by Fx.
type ReputationHandlerParams struct {
	fx.In

	ReputationUC usecase.ReputationUsecase
	Logger       *slog.Logger
}

// ReputationHandler serves the reputation ledger and the score preview
type ReputationHandler struct {
	reputationUC usecase.ReputationUsecase
	logger       *slog.Logger
}

// NewReputationHandler is the constructor for ReputationHandler
func NewReputationHandler(params ReputationHandlerParams) *ReputationHandler {
	return &ReputationHandler{
		reputationUC: params.ReputationUC,
		logger:       params.Logger,
	}
}

// PreviewScoreResponse carries the advisory heuristic score
type PreviewScoreResponse struct {
	Score int `json:"score"`
}

// GetSummary handles GET /api/reputation/:userId
func (h *ReputationHandler) GetSummary(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.ValidationError(c, err)
	}
	if limit < 0 {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", "limit must not be negative")
	}

	summary, err := h.reputationUC.GetSummary(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReputationResponse(summary))
}

// PreviewScore handles POST /api/reputation/preview. An empty body scores a fresh history,
// and an omitted baseScore starts from the default.
func (h *ReputationHandler) PreviewScore(c echo.Context) error {
	req := c.Request()
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reputation data")
	}

	var data *reputation.Data
	if len(bytes.TrimSpace(raw)) > 0 {
		// Chunked bodies report ContentLength -1, which the binder treats as empty.
		req.Body = io.NopCloser(bytes.NewReader(raw))
		req.ContentLength = int64(len(raw))

		data = &reputation.Data{BaseScore: reputation.DefaultBaseScore}
		if err := c.Bind(data); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid reputation data")
		}
	}

	score := h.reputationUC.PreviewScore(req.Context(), data)

	return response.Success(c, http.StatusOK, PreviewScoreResponse{Score: score})
}
