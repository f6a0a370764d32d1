package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bumpr/internal/delivery/api/response"
	"bumpr/internal/domain/geo"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MomentHandlerParams holds dependencies for MomentHandler, injected by Fx.
type MomentHandlerParams struct {
	fx.In

	MomentUC usecase.MomentUsecase
	Logger   *slog.Logger
}

// MomentHandler serves moment endpoints
type MomentHandler struct {
	momentUC usecase.MomentUsecase
	logger   *slog.Logger
}

// NewMomentHandler is the constructor for MomentHandler
func NewMomentHandler(params MomentHandlerParams) *MomentHandler {
	return &MomentHandler{
		momentUC: params.MomentUC,
		logger:   params.Logger,
	}
}

// CreateMomentRequest represents the request body for posting a moment.
// Numeric ranges are checked against configuration by the use case.
type CreateMomentRequest struct {
	UserID           string     `json:"userId" validate:"required,uuid"`
	VideoURL         string     `json:"videoUrl"`
	ThumbnailURL     string     `json:"thumbnailUrl"`
	Caption          string     `json:"caption" validate:"max=280"`
	LocationLat      *float64   `json:"locationLat" validate:"required,min=-90,max=90"`
	LocationLng      *float64   `json:"locationLng" validate:"required,min=-180,max=180"`
	LocationName     string     `json:"locationName"`
	DurationSeconds  *int       `json:"durationSeconds,omitempty"`
	VisibilityRadius *float64   `json:"visibilityRadius,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"`
	ExpiresInHours   *int       `json:"expiresInHours,omitempty"`
}

// RecordViewRequest represents the request body for registering a view
type RecordViewRequest struct {
	ViewerID string `json:"viewerId" validate:"required,uuid"`
}

// RecordViewResponse reports whether the call registered a new view
type RecordViewResponse struct {
	MomentID  uuid.UUID `json:"momentId"`
	ViewerID  uuid.UUID `json:"viewerId"`
	FirstView bool      `json:"firstView"`
}

// Create handles POST /api/moments
func (h *MomentHandler) Create(c echo.Context) error {
	var req CreateMomentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	moment, err := h.momentUC.Create(c.Request().Context(), &usecase.CreateMomentInput{
		UserID:           uuid.MustParse(req.UserID),
		VideoURL:         req.VideoURL,
		ThumbnailURL:     req.ThumbnailURL,
		Caption:          req.Caption,
		Location:         geo.NewCoordinate(*req.LocationLat, *req.LocationLng),
		LocationName:     req.LocationName,
		DurationSeconds:  req.DurationSeconds,
		VisibilityRadius: req.VisibilityRadius,
		ExpiresAt:        req.ExpiresAt,
		ExpiresInHours:   req.ExpiresInHours,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toMomentResponse(moment))
}

// Get handles GET /api/moments/:id
func (h *MomentHandler) Get(c echo.Context) error {
	momentID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid moment ID")
	}

	moment, err := h.momentUC.Get(c.Request().Context(), momentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMomentResponse(moment))
}

// ListByUser handles GET /api/users/:userId/moments
func (h *MomentHandler) ListByUser(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	moments, err := h.momentUC.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMomentResponses(moments))
}

// FindNearby handles GET /api/moments/nearby
func (h *MomentHandler) FindNearby(c echo.Context) error {
	query, err := bindNearbyQuery(c)
	if err != nil {
		return response.ValidationError(c, err)
	}

	nearby, err := h.momentUC.FindNearby(c.Request().Context(), &usecase.NearbyMomentsQuery{
		Observer:     query.Observer,
		RadiusMeters: query.Radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNearbyMomentResponses(nearby))
}

// RecordView handles POST /api/moments/:id/view. Repeated calls by one viewer are harmless.
func (h *MomentHandler) RecordView(c echo.Context) error {
	momentID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid moment ID")
	}

	var req RecordViewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	viewerID := uuid.MustParse(req.ViewerID)
	firstView, err := h.momentUC.RecordView(c.Request().Context(), momentID, viewerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RecordViewResponse{
		MomentID:  momentID,
		ViewerID:  viewerID,
		FirstView: firstView,
	})
}
