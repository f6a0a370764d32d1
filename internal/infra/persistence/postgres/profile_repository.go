package postgres

import (
	"context"
	"time"

	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/geo"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/reputation"
	"bumpr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves the profile owned by userID.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUserIDs retrieves the profiles for the given users.
func (repo *profileRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.Profile, error) {
	if len(userIDs) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by user IDs")
	}

	return toProfileDomains(profileModels), nil
}

// UpdateDetails persists name, bio, avatar and interests.
func (repo *profileRepository) UpdateDetails(ctx context.Context, profile *entity.Profile) error {
	// Select forces zero values (an emptied bio, say) to be written and runs the json serializer on interests.
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Select("name", "bio", "avatar_url", "interests", "updated_at").
		Updates(&model.ProfileModel{
			Name:      profile.Name,
			Bio:       profile.Bio,
			AvatarURL: profile.AvatarURL,
			Interests: profile.Interests,
			UpdatedAt: profile.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile details")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateStatus sets the discovery status.
func (repo *profileRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.ProfileStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateLocation stores the last reported location.
func (repo *profileRepository) UpdateLocation(ctx context.Context, userID uuid.UUID, location geo.Coordinate, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"last_location_lat": location.Latitude,
			"last_location_lng": location.Longitude,
			"location_updated":  at,
			"updated_at":        at,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// FindDiscoverable returns open profiles with a fresh location inside the query bound.
func (repo *profileRepository) FindDiscoverable(ctx context.Context, query repository.DiscoverableQuery) ([]*entity.Profile, error) {
	var profileModels []*model.ProfileModel

	tx := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.ProfileStatusOpen)).
		Where("last_location_lat IS NOT NULL AND last_location_lng IS NOT NULL").
		Where("location_updated > ?", query.FreshSince).
		Where("last_location_lat BETWEEN ? AND ?", query.Bound.MinLat, query.Bound.MaxLat)

	if !query.Bound.WrapsLongitude {
		tx = tx.Where("last_location_lng BETWEEN ? AND ?", query.Bound.MinLng, query.Bound.MaxLng)
	}

	if query.ExcludeUserID != nil {
		tx = tx.Where("user_id <> ?", *query.ExcludeUserID)
	}

	if err := tx.Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find discoverable profiles")
	}

	return toProfileDomains(profileModels), nil
}

// ApplyScoreDelta adds delta to the clique score in one clamped statement and returns the new score.
func (repo *profileRepository) ApplyScoreDelta(ctx context.Context, userID uuid.UUID, delta int) (int, error) {
	var score int

	result := repo.db.WithContext(ctx).Raw(`
		UPDATE profiles
		SET clique_score = LEAST(?, GREATEST(?, clique_score + ?)),
		    updated_at = ?
		WHERE user_id = ?
		RETURNING clique_score`,
		reputation.MaxScore, reputation.MinScore, delta, time.Now(), userID,
	).Scan(&score)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to apply clique score delta")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrProfileNotFound
	}

	return score, nil
}

// IncrementHandshakes adds one to the accepted handshake counter.
func (repo *profileRepository) IncrementHandshakes(ctx context.Context, userID uuid.UUID) error {
	return repo.increment(ctx, userID, "total_handshakes")
}

// IncrementMoments adds one to the created moment counter.
func (repo *profileRepository) IncrementMoments(ctx context.Context, userID uuid.UUID) error {
	return repo.increment(ctx, userID, "total_moments")
}

func (repo *profileRepository) increment(ctx context.Context, userID uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Update(column, gorm.Expr(column+" + 1"))

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to increment %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		UserID:          data.UserID,
		Name:            data.Name,
		Bio:             data.Bio,
		AvatarURL:       data.AvatarURL,
		Interests:       data.Interests,
		Status:          entity.ProfileStatus(data.Status),
		LocationUpdated: data.LocationUpdated,
		CliqueScore:     data.CliqueScore,
		TotalHandshakes: data.TotalHandshakes,
		TotalMoments:    data.TotalMoments,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}

	if data.LastLocationLat != nil && data.LastLocationLng != nil {
		loc := geo.NewCoordinate(*data.LastLocationLat, *data.LastLocationLng)
		profile.LastLocation = &loc
	}

	return profile
}

func toProfileDomains(models []*model.ProfileModel) []*entity.Profile {
	profiles := make([]*entity.Profile, 0, len(models))
	for _, profileM := range models {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	profileM := &model.ProfileModel{
		UserID:          data.UserID,
		Name:            data.Name,
		Bio:             data.Bio,
		AvatarURL:       data.AvatarURL,
		Interests:       data.Interests,
		Status:          string(data.Status),
		LocationUpdated: data.LocationUpdated,
		CliqueScore:     data.CliqueScore,
		TotalHandshakes: data.TotalHandshakes,
		TotalMoments:    data.TotalMoments,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.LastLocation != nil {
		lat, lng := data.LastLocation.Latitude, data.LastLocation.Longitude
		profileM.LastLocationLat = &lat
		profileM.LastLocationLng = &lng
	}

	return profileM
}
