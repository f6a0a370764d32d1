package handler

import (
	"log/slog"
	"net/http"

	"bumpr/internal/delivery/api/response"
	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/geo"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves profile and user discovery endpoints
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateProfileRequest represents the request body for creating a profile
type CreateProfileRequest struct {
	UserID    string   `json:"userId" validate:"required,uuid"`
	Name      string   `json:"name" validate:"required,max=100"`
	Bio       string   `json:"bio" validate:"max=500"`
	AvatarURL string   `json:"avatarUrl" validate:"omitempty,url"`
	Interests []string `json:"interests" validate:"max=20,dive,max=50"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Bio       *string  `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL *string  `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Interests []string `json:"interests,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

// UpdateStatusRequest represents the request body for changing discoverability
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open busy"`
}

// UpdateLocationRequest represents the request body for reporting a location
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// CreateProfile handles profile creation
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), &usecase.CreateProfileInput{
		UserID:    uuid.MustParse(req.UserID),
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Interests: req.Interests,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProfileResponse(profile))
}

// GetProfile handles retrieving a single profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile handles partial profile updates
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Interests: req.Interests,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile))
}

// UpdateStatus handles switching between open and busy
func (h *ProfileHandler) UpdateStatus(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	status := entity.ProfileStatus(req.Status)
	if err := h.profileUC.UpdateStatus(c.Request().Context(), userID, status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": string(status)})
}

// UpdateLocation handles a location report from the client
func (h *ProfileHandler) UpdateLocation(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	location := geo.NewCoordinate(*req.Latitude, *req.Longitude)
	if err := h.profileUC.UpdateLocation(c.Request().Context(), userID, location); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CoordinateResponse{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	})
}

// FindNearby handles GET /api/users/nearby
func (h *ProfileHandler) FindNearby(c echo.Context) error {
	query, err := bindNearbyQuery(c)
	if err != nil {
		return response.ValidationError(c, err)
	}

	input := &usecase.NearbyUsersQuery{
		Observer:     query.Observer,
		RadiusMeters: query.Radius,
	}
	if raw := c.QueryParam("excludeUserId"); raw != "" {
		excludeID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid excludeUserId")
		}
		input.ExcludeUserID = &excludeID
	}

	nearby, err := h.profileUC.FindNearby(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNearbyUserResponses(nearby))
}

// GenerateHandshakeQR renders the user's handshake QR code as a PNG image
func (h *ProfileHandler) GenerateHandshakeQR(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	png, err := h.profileUC.GenerateHandshakeQR(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
