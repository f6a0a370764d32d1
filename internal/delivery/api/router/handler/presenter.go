package handler

import (
	"time"

	"bumpr/internal/domain/entity"
	"bumpr/internal/domain/reputation"

	"github.com/google/uuid"
)

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	ID              uuid.UUID            `json:"id"`
	Name            string               `json:"name"`
	Bio             string               `json:"bio"`
	AvatarURL       string               `json:"avatarUrl"`
	Interests       []string             `json:"interests"`
	Status          entity.ProfileStatus `json:"status"`
	LastLocation    *CoordinateResponse  `json:"lastLocation,omitempty"`
	LocationUpdated *time.Time           `json:"locationUpdatedAt,omitempty"`
	CliqueScore     int                  `json:"cliqueScore"`
	TotalHandshakes int                  `json:"totalHandshakes"`
	TotalMoments    int                  `json:"totalMoments"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

// CoordinateResponse is a latitude/longitude pair.
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbyUserResponse is one entry of a nearby-users result.
type NearbyUserResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	AvatarURL   string               `json:"avatarUrl"`
	CliqueScore int                  `json:"cliqueScore"`
	Distance    float64              `json:"distance"`
	Status      entity.ProfileStatus `json:"status"`
	Bio         string               `json:"bio"`
	Interests   []string             `json:"interests"`
}

// HandshakeResponse is the public view of a handshake.
type HandshakeResponse struct {
	ID          uuid.UUID              `json:"id"`
	SenderID    uuid.UUID              `json:"senderId"`
	ReceiverID  uuid.UUID              `json:"receiverId"`
	Status      entity.HandshakeStatus `json:"status"`
	SenderLat   float64                `json:"senderLat"`
	SenderLng   float64                `json:"senderLng"`
	ReceiverLat *float64               `json:"receiverLat,omitempty"`
	ReceiverLng *float64               `json:"receiverLng,omitempty"`
	Distance    *float64               `json:"distance,omitempty"`
	Message     string                 `json:"message,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	RespondedAt *time.Time             `json:"respondedAt,omitempty"`
}

// MomentResponse is the public view of a moment.
type MomentResponse struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	VideoURL         string    `json:"videoUrl"`
	ThumbnailURL     string    `json:"thumbnailUrl,omitempty"`
	Caption          string    `json:"caption,omitempty"`
	LocationLat      float64   `json:"locationLat"`
	LocationLng      float64   `json:"locationLng"`
	LocationName     string    `json:"locationName,omitempty"`
	DurationSeconds  int       `json:"durationSeconds"`
	VisibilityRadius float64   `json:"visibilityRadius"`
	ViewCount        int       `json:"viewCount"`
	ExpiresAt        time.Time `json:"expiresAt"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NearbyMomentResponse is a moment enriched with its creator.
type NearbyMomentResponse struct {
	MomentResponse
	Distance float64          `json:"distance"`
	User     *ProfileResponse `json:"user"`
}

// ReputationResponse summarizes a user's score and ledger.
type ReputationResponse struct {
	Score           int                       `json:"score"`
	TotalHandshakes int                       `json:"totalHandshakes"`
	TotalMoments    int                       `json:"totalMoments"`
	History         []ReputationEventResponse `json:"history"`
}

// ReputationEventResponse is one ledger entry.
type ReputationEventResponse struct {
	ID           uuid.UUID         `json:"id"`
	ChangeAmount int               `json:"changeAmount"`
	Reason       reputation.Reason `json:"reason"`
	RelatedID    *uuid.UUID        `json:"relatedId,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:              p.UserID,
		Name:            p.Name,
		Bio:             p.Bio,
		AvatarURL:       p.AvatarURL,
		Interests:       nonNilStrings(p.Interests),
		Status:          p.Status,
		LocationUpdated: p.LocationUpdated,
		CliqueScore:     p.CliqueScore,
		TotalHandshakes: p.TotalHandshakes,
		TotalMoments:    p.TotalMoments,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if p.LastLocation != nil {
		resp.LastLocation = &CoordinateResponse{
			Latitude:  p.LastLocation.Latitude,
			Longitude: p.LastLocation.Longitude,
		}
	}

	return resp
}

func toNearbyUserResponses(nearby []*entity.NearbyProfile) []NearbyUserResponse {
	resp := make([]NearbyUserResponse, 0, len(nearby))
	for _, n := range nearby {
		resp = append(resp, NearbyUserResponse{
			ID:          n.Profile.UserID,
			Name:        n.Profile.Name,
			AvatarURL:   n.Profile.AvatarURL,
			CliqueScore: n.Profile.CliqueScore,
			Distance:    n.DistanceMeters,
			Status:      n.Profile.Status,
			Bio:         n.Profile.Bio,
			Interests:   nonNilStrings(n.Profile.Interests),
		})
	}

	return resp
}

func toHandshakeResponse(h *entity.Handshake) *HandshakeResponse {
	resp := &HandshakeResponse{
		ID:          h.ID,
		SenderID:    h.SenderID,
		ReceiverID:  h.ReceiverID,
		Status:      h.Status,
		SenderLat:   h.SenderLocation.Latitude,
		SenderLng:   h.SenderLocation.Longitude,
		Distance:    h.DistanceMeters,
		Message:     h.Message,
		CreatedAt:   h.CreatedAt,
		RespondedAt: h.RespondedAt,
	}
	if h.ReceiverLocation != nil {
		resp.ReceiverLat = &h.ReceiverLocation.Latitude
		resp.ReceiverLng = &h.ReceiverLocation.Longitude
	}

	return resp
}

func toHandshakeResponses(handshakes []*entity.Handshake) []*HandshakeResponse {
	resp := make([]*HandshakeResponse, 0, len(handshakes))
	for _, h := range handshakes {
		resp = append(resp, toHandshakeResponse(h))
	}

	return resp
}

func toMomentResponse(m *entity.Moment) *MomentResponse {
	return &MomentResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		VideoURL:         m.VideoURL,
		ThumbnailURL:     m.ThumbnailURL,
		Caption:          m.Caption,
		LocationLat:      m.Position.Latitude,
		LocationLng:      m.Position.Longitude,
		LocationName:     m.LocationName,
		DurationSeconds:  m.DurationSeconds,
		VisibilityRadius: m.VisibilityRadius,
		ViewCount:        m.ViewCount,
		ExpiresAt:        m.ExpiresAt,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
	}
}

func toMomentResponses(moments []*entity.Moment) []*MomentResponse {
	resp := make([]*MomentResponse, 0, len(moments))
	for _, m := range moments {
		resp = append(resp, toMomentResponse(m))
	}

	return resp
}

func toNearbyMomentResponses(nearby []*entity.NearbyMoment) []NearbyMomentResponse {
	resp := make([]NearbyMomentResponse, 0, len(nearby))
	for _, n := range nearby {
		resp = append(resp, NearbyMomentResponse{
			MomentResponse: *toMomentResponse(n.Moment),
			Distance:       n.DistanceMeters,
			User:           toProfileResponse(n.Creator),
		})
	}

	return resp
}

func toReputationResponse(summary *entity.ReputationSummary) *ReputationResponse {
	history := make([]ReputationEventResponse, 0, len(summary.History))
	for _, event := range summary.History {
		history = append(history, ReputationEventResponse{
			ID:           event.ID,
			ChangeAmount: event.Delta,
			Reason:       event.Reason,
			RelatedID:    event.RelatedID,
			CreatedAt:    event.CreatedAt,
		})
	}

	return &ReputationResponse{
		Score:           summary.Score,
		TotalHandshakes: summary.TotalHandshakes,
		TotalMoments:    summary.TotalMoments,
		History:         history,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
