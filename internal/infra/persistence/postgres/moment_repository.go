package postgres

import (
	"context"
	"time"

	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/geo"
	"bumpr/internal/domain/repository"
	"bumpr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// momentRepository implements the repository.MomentRepository interface.
type momentRepository struct {
	db *gorm.DB
}

// NewMomentRepository is the constructor for momentRepository.
func NewMomentRepository(db *gorm.DB) repository.MomentRepository {
	return &momentRepository{
		db: db,
	}
}

// Create persists a new moment.
func (repo *momentRepository) Create(ctx context.Context, moment *entity.Moment) error {
	momentM := fromMomentDomain(moment)

	if err := repo.db.WithContext(ctx).Create(momentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid moment data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create moment")
	}

	moment.ID = momentM.ID
	moment.CreatedAt = momentM.CreatedAt

	return nil
}

// FindByID retrieves a moment by its ID.
func (repo *momentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Moment, error) {
	var momentM model.MomentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&momentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMomentNotFound
		}

		return nil, errors.Wrap(err, "failed to find moment by ID")
	}

	return toMomentDomain(&momentM), nil
}

// FindByUser lists the moments created by userID.
func (repo *momentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Moment, error) {
	var momentModels []*model.MomentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&momentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find moments by user")
	}

	return toMomentDomains(momentModels), nil
}

// FindVisible returns active, unexpired moments inside bound.
func (repo *momentRepository) FindVisible(ctx context.Context, bound geo.Bound, now time.Time) ([]*entity.Moment, error) {
	var momentModels []*model.MomentModel

	tx := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("expires_at > ?", now).
		Where("location_lat BETWEEN ? AND ?", bound.MinLat, bound.MaxLat)

	if !bound.WrapsLongitude {
		tx = tx.Where("location_lng BETWEEN ? AND ?", bound.MinLng, bound.MaxLng)
	}

	if err := tx.Order("created_at DESC").Find(&momentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible moments")
	}

	return toMomentDomains(momentModels), nil
}

// IncrementViewCount adds one to the view counter.
func (repo *momentRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MomentModel{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment moment view count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMomentNotFound
	}

	return nil
}

// DeactivateExpired flips is_active for every expired moment that is still active.
func (repo *momentRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MomentModel{}).
		Where("is_active = ? AND expires_at <= ?", true, now).
		Update("is_active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate expired moments")
	}

	return result.RowsAffected, nil
}

// momentViewRepository implements the repository.MomentViewRepository interface.
type momentViewRepository struct {
	db *gorm.DB
}

// NewMomentViewRepository is the constructor for momentViewRepository.
func NewMomentViewRepository(db *gorm.DB) repository.MomentViewRepository {
	return &momentViewRepository{
		db: db,
	}
}

// InsertIfAbsent relies on the unique (moment_id, viewer_id) index, so concurrent duplicates insert at most once.
func (repo *momentViewRepository) InsertIfAbsent(ctx context.Context, view *entity.MomentView) (bool, error) {
	viewM := &model.MomentViewModel{
		ID:       view.ID,
		MomentID: view.MomentID,
		ViewerID: view.ViewerID,
		ViewedAt: view.ViewedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "moment_id"}, {Name: "viewer_id"}},
			DoNothing: true,
		}).
		Create(viewM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrMomentNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record moment view")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toMomentDomain converts a GORM MomentModel to a domain Moment entity.
func toMomentDomain(data *model.MomentModel) *entity.Moment {
	if data == nil {
		return nil
	}

	return &entity.Moment{
		ID:               data.ID,
		UserID:           data.UserID,
		VideoURL:         data.VideoURL,
		ThumbnailURL:     data.ThumbnailURL,
		Caption:          data.Caption,
		Position:         geo.NewCoordinate(data.LocationLat, data.LocationLng),
		LocationName:     data.LocationName,
		DurationSeconds:  data.DurationSeconds,
		VisibilityRadius: data.VisibilityRadius,
		ViewCount:        data.ViewCount,
		ExpiresAt:        data.ExpiresAt,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
	}
}

func toMomentDomains(models []*model.MomentModel) []*entity.Moment {
	moments := make([]*entity.Moment, 0, len(models))
	for _, momentM := range models {
		moments = append(moments, toMomentDomain(momentM))
	}

	return moments
}

// fromMomentDomain converts a domain Moment entity to a GORM MomentModel.
func fromMomentDomain(data *entity.Moment) *model.MomentModel {
	if data == nil {
		return nil
	}

	return &model.MomentModel{
		ID:               data.ID,
		UserID:           data.UserID,
		VideoURL:         data.VideoURL,
		ThumbnailURL:     data.ThumbnailURL,
		Caption:          data.Caption,
		LocationLat:      data.Position.Latitude,
		LocationLng:      data.Position.Longitude,
		LocationName:     data.LocationName,
		DurationSeconds:  data.DurationSeconds,
		VisibilityRadius: data.VisibilityRadius,
		ViewCount:        data.ViewCount,
		ExpiresAt:        data.ExpiresAt,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
	}
}
