package postgres

import (
	"context"

	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/geo"
	"bumpr/internal/domain/repository"
	"bumpr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var activeHandshakeStatuses = []string{
	string(entity.HandshakeStatusPending),
	string(entity.HandshakeStatusAccepted),
}

// handshakeRepository implements the repository.HandshakeRepository interface.
type handshakeRepository struct {
	db *gorm.DB
}

// NewHandshakeRepository is the constructor for handshakeRepository.
func NewHandshakeRepository(db *gorm.DB) repository.HandshakeRepository {
	return &handshakeRepository{
		db: db,
	}
}

// Create persists a new pending handshake.
// The partial unique index on (pair_low, pair_high) rejects a second active handshake even under concurrent requests.
func (repo *handshakeRepository) Create(ctx context.Context, handshake *entity.Handshake) error {
	handshakeM := fromHandshakeDomain(handshake)

	if err := repo.db.WithContext(ctx).Create(handshakeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateHandshake
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create handshake")
	}

	handshake.ID = handshakeM.ID
	handshake.CreatedAt = handshakeM.CreatedAt

	return nil
}

// FindByID retrieves a handshake by its ID.
func (repo *handshakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Handshake, error) {
	var handshakeM model.HandshakeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&handshakeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHandshakeNotFound
		}

		return nil, errors.Wrap(err, "failed to find handshake by ID")
	}

	return toHandshakeDomain(&handshakeM), nil
}

// FindActiveBetween returns the pending or accepted handshake between two users.
// It always reads from the primary so a handshake created a moment ago is never missed through replica lag.
func (repo *handshakeRepository) FindActiveBetween(ctx context.Context, userA, userB uuid.UUID) (*entity.Handshake, error) {
	var handshakeM model.HandshakeModel
	low, high := entity.PairKey(userA, userB)

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("pair_low = ? AND pair_high = ?", low, high).
		Where("status IN ?", activeHandshakeStatuses).
		Order("created_at DESC").
		First(&handshakeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHandshakeNotFound
		}

		return nil, errors.Wrap(err, "failed to find active handshake between users")
	}

	return toHandshakeDomain(&handshakeM), nil
}

// FindPendingForReceiver lists pending handshakes addressed to userID.
func (repo *handshakeRepository) FindPendingForReceiver(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error) {
	return repo.findMany(ctx, "failed to find pending handshakes",
		"receiver_id = ? AND status = ?", userID, string(entity.HandshakeStatusPending))
}

// FindSentBy lists handshakes sent by userID.
func (repo *handshakeRepository) FindSentBy(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error) {
	return repo.findMany(ctx, "failed to find sent handshakes", "sender_id = ?", userID)
}

// FindAcceptedFor lists accepted handshakes where userID is either party.
func (repo *handshakeRepository) FindAcceptedFor(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error) {
	return repo.findMany(ctx, "failed to find accepted handshakes",
		"(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, string(entity.HandshakeStatusAccepted))
}

func (repo *handshakeRepository) findMany(ctx context.Context, failMsg string, query string, args ...any) ([]*entity.Handshake, error) {
	var handshakeModels []*model.HandshakeModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&handshakeModels).Error; err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	handshakes := make([]*entity.Handshake, 0, len(handshakeModels))
	for _, handshakeM := range handshakeModels {
		handshakes = append(handshakes, toHandshakeDomain(handshakeM))
	}

	return handshakes, nil
}

// SaveResponse persists the response of a handshake that is still pending.
func (repo *handshakeRepository) SaveResponse(ctx context.Context, handshake *entity.Handshake) error {
	updates := map[string]any{
		"status":          string(handshake.Status),
		"responded_at":    handshake.RespondedAt,
		"receiver_lat":    nil,
		"receiver_lng":    nil,
		"distance_meters": handshake.DistanceMeters,
	}
	if handshake.ReceiverLocation != nil {
		updates["receiver_lat"] = handshake.ReceiverLocation.Latitude
		updates["receiver_lng"] = handshake.ReceiverLocation.Longitude
	}

	result := repo.db.WithContext(ctx).
		Model(&model.HandshakeModel{}).
		Where("id = ? AND status = ?", handshake.ID, string(entity.HandshakeStatusPending)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save handshake response")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHandshakeNotPending
	}

	return nil
}

// --- Mapper Functions ---

// toHandshakeDomain converts a GORM HandshakeModel to a domain Handshake entity.
func toHandshakeDomain(data *model.HandshakeModel) *entity.Handshake {
	if data == nil {
		return nil
	}

	handshake := &entity.Handshake{
		ID:             data.ID,
		SenderID:       data.SenderID,
		ReceiverID:     data.ReceiverID,
		Status:         entity.HandshakeStatus(data.Status),
		SenderLocation: geo.NewCoordinate(data.SenderLat, data.SenderLng),
		DistanceMeters: data.DistanceMeters,
		Message:        data.Message,
		CreatedAt:      data.CreatedAt,
		RespondedAt:    data.RespondedAt,
	}

	if data.ReceiverLat != nil && data.ReceiverLng != nil {
		loc := geo.NewCoordinate(*data.ReceiverLat, *data.ReceiverLng)
		handshake.ReceiverLocation = &loc
	}

	return handshake
}

// fromHandshakeDomain converts a domain Handshake entity to a GORM HandshakeModel.
func fromHandshakeDomain(data *entity.Handshake) *model.HandshakeModel {
	if data == nil {
		return nil
	}

	low, high := entity.PairKey(data.SenderID, data.ReceiverID)
	handshakeM := &model.HandshakeModel{
		ID:             data.ID,
		SenderID:       data.SenderID,
		ReceiverID:     data.ReceiverID,
		PairLow:        low,
		PairHigh:       high,
		Status:         string(data.Status),
		SenderLat:      data.SenderLocation.Latitude,
		SenderLng:      data.SenderLocation.Longitude,
		DistanceMeters: data.DistanceMeters,
		Message:        data.Message,
		CreatedAt:      data.CreatedAt,
		RespondedAt:    data.RespondedAt,
	}

	if data.ReceiverLocation != nil {
		lat, lng := data.ReceiverLocation.Latitude, data.ReceiverLocation.Longitude
		handshakeM.ReceiverLat = &lat
		handshakeM.ReceiverLng = &lng
	}

	return handshakeM
}
