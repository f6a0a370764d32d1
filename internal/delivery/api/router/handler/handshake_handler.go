package handler

import (
	"context"
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

// HandshakeHandlerParams holds dependencies for HandshakeHandler, injected by Fx.
type HandshakeHandlerParams struct {
	fx.In

	HandshakeUC usecase.HandshakeUsecase
	Logger      *slog.Logger
}

// HandshakeHandler serves connection request endpoints
type HandshakeHandler struct {
	handshakeUC usecase.HandshakeUsecase
	logger      *slog.Logger
}

// NewHandshakeHandler is the constructor for HandshakeHandler
func NewHandshakeHandler(params HandshakeHandlerParams) *HandshakeHandler {
	return &HandshakeHandler{
		handshakeUC: params.HandshakeUC,
		logger:      params.Logger,
	}
}

// SendHandshakeRequest represents the request body for sending a handshake
type SendHandshakeRequest struct {
	SenderID   string   `json:"senderId" validate:"required,uuid"`
	ReceiverID string   `json:"receiverId" validate:"required,uuid"`
	SenderLat  *float64 `json:"senderLat" validate:"required,min=-90,max=90"`
	SenderLng  *float64 `json:"senderLng" validate:"required,min=-180,max=180"`
	Message    string   `json:"message" validate:"max=280"`
}

// SendHandshakeFromQRRequest represents a handshake started by scanning a QR code
type SendHandshakeFromQRRequest struct {
	SenderID  string   `json:"senderId" validate:"required,uuid"`
	QRData    string   `json:"qrData" validate:"required"`
	SenderLat *float64 `json:"senderLat" validate:"required,min=-90,max=90"`
	SenderLng *float64 `json:"senderLng" validate:"required,min=-180,max=180"`
	Message   string   `json:"message" validate:"max=280"`
}

// RespondHandshakeRequest represents the receiver's answer
type RespondHandshakeRequest struct {
	Response    string   `json:"response" validate:"required,oneof=accepted declined"`
	ReceiverLat *float64 `json:"receiverLat,omitempty" validate:"omitempty,min=-90,max=90"`
	ReceiverLng *float64 `json:"receiverLng,omitempty" validate:"omitempty,min=-180,max=180"`
}

// Send handles POST /api/handshakes
func (h *HandshakeHandler) Send(c echo.Context) error {
	var req SendHandshakeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid handshake input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	handshake, err := h.handshakeUC.Send(c.Request().Context(), &usecase.SendHandshakeInput{
		SenderID:       uuid.MustParse(req.SenderID),
		ReceiverID:     uuid.MustParse(req.ReceiverID),
		SenderLocation: geo.NewCoordinate(*req.SenderLat, *req.SenderLng),
		Message:        req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toHandshakeResponse(handshake))
}

// SendFromQR handles POST /api/handshakes/qr
func (h *HandshakeHandler) SendFromQR(c echo.Context) error {
	var req SendHandshakeFromQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid handshake input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	handshake, err := h.handshakeUC.SendFromQR(c.Request().Context(), &usecase.SendHandshakeFromQRInput{
		SenderID:       uuid.MustParse(req.SenderID),
		QRData:         req.QRData,
		SenderLocation: geo.NewCoordinate(*req.SenderLat, *req.SenderLng),
		Message:        req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toHandshakeResponse(handshake))
}

// Respond handles POST /api/handshakes/:id/respond
func (h *HandshakeHandler) Respond(c echo.Context) error {
	handshakeID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid handshake ID")
	}

	var req RespondHandshakeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if (req.ReceiverLat == nil) != (req.ReceiverLng == nil) {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed",
			"receiverLat and receiverLng must be sent together")
	}

	input := &usecase.RespondHandshakeInput{
		HandshakeID: handshakeID,
		Status:      entity.HandshakeStatus(req.Response),
	}
	if req.ReceiverLat != nil {
		location := geo.NewCoordinate(*req.ReceiverLat, *req.ReceiverLng)
		input.ReceiverLocation = &location
	}

	handshake, err := h.handshakeUC.Respond(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHandshakeResponse(handshake))
}

// ListPending handles GET /api/handshakes/pending/:userId
func (h *HandshakeHandler) ListPending(c echo.Context) error {
	return h.list(c, h.handshakeUC.ListPending)
}

// ListSent handles GET /api/handshakes/sent/:userId
func (h *HandshakeHandler) ListSent(c echo.Context) error {
	return h.list(c, h.handshakeUC.ListSent)
}

// ListAccepted handles GET /api/handshakes/accepted/:userId
func (h *HandshakeHandler) ListAccepted(c echo.Context) error {
	return h.list(c, h.handshakeUC.ListAccepted)
}

type listHandshakesFunc func(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error)

func (h *HandshakeHandler) list(c echo.Context, fetch listHandshakesFunc) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	handshakes, err := fetch(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHandshakeResponses(handshakes))
}
