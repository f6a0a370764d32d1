package postgres

import (
	"context"

	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/reputation"
	"bumpr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reputationRepository implements the repository.ReputationRepository interface.
type reputationRepository struct {
	db *gorm.DB
}

// NewReputationRepository is the constructor for reputationRepository.
func NewReputationRepository(db *gorm.DB) repository.ReputationRepository {
	return &reputationRepository{
		db: db,
	}
}

// Append records a ledger event.
func (repo *reputationRepository) Append(ctx context.Context, event *entity.ReputationEvent) error {
	eventM := &model.ReputationEventModel{
		ID:           event.ID,
		UserID:       event.UserID,
		ChangeAmount: event.Delta,
		Reason:       string(event.Reason),
		RelatedID:    event.RelatedID,
		CreatedAt:    event.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append reputation event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindByUser lists the most recent events for userID.
func (repo *reputationRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ReputationEvent, error) {
	var eventModels []*model.ReputationEventModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reputation history")
	}

	events := make([]*entity.ReputationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, &entity.ReputationEvent{
			ID:        eventM.ID,
			UserID:    eventM.UserID,
			Delta:     eventM.ChangeAmount,
			Reason:    reputation.Reason(eventM.Reason),
			RelatedID: eventM.RelatedID,
			CreatedAt: eventM.CreatedAt,
		})
	}

	return events, nil
}
