package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bumpr/config"
	deliverycontext "bumpr/internal/delivery/context"
	"bumpr/internal/domain/constants"
	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/geo"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/reputation"
	"bumpr/internal/domain/service"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// momentService implements the MomentUsecase interface.
type momentService struct {
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	moment         *config.MomentConfig
	maxRadius      float64
	logger         *slog.Logger
	now            func() time.Time
}

// MomentServiceParams holds dependencies for MomentService, injected by Fx.
type MomentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMomentService is the constructor for momentService.
func NewMomentService(params MomentServiceParams) usecase.MomentUsecase {
	return &momentService{
		txManager:      params.TxManager,
		eventPublisher: params.EventPublisher,
		moment:         params.Config.Moment,
		maxRadius:      params.Config.Proximity.MaxRadius,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *momentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a moment, counts it and credits the creator.
func (srv *momentService) Create(ctx context.Context, input *usecase.CreateMomentInput) (*entity.Moment, error) {
	now := srv.now()

	moment, err := srv.buildMoment(input, now)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProfile(ctx, repoFactory, input.UserID); err != nil {
			return err
		}

		if err := repoFactory.MomentRepo().Create(ctx, moment); err != nil {
			return errors.Wrap(err, "failed to create moment")
		}

		if err := repoFactory.ProfileRepo().IncrementMoments(ctx, moment.UserID); err != nil {
			return errors.Wrap(err, "failed to increment moment total")
		}

		_, err := creditReputation(ctx, repoFactory, &reputationCredit{
			UserID:    moment.UserID,
			Delta:     reputation.DeltaMomentCreated,
			Reason:    reputation.ReasonMomentCreated,
			RelatedID: &moment.ID,
			At:        now,
		})

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create moment")
	}

	srv.log(ctx).Info("Moment created",
		slog.String("moment_id", moment.ID.String()),
		slog.String("user_id", moment.UserID.String()),
		slog.Time("expires_at", moment.ExpiresAt),
	)

	publishActivity(ctx, srv.eventPublisher, srv.logger, activity{
		Type:      constants.ActivityMomentCreated,
		ActorID:   moment.UserID,
		TargetID:  moment.UserID,
		SubjectID: moment.ID,
		At:        now,
	})

	return moment, nil
}

// buildMoment validates the input and fills configured defaults.
func (srv *momentService) buildMoment(input *usecase.CreateMomentInput, now time.Time) (*entity.Moment, error) {
	cfg := srv.moment

	if err := validateCoordinate(input.Location); err != nil {
		return nil, err
	}

	duration := cfg.DefaultDurationSeconds
	if input.DurationSeconds != nil {
		duration = *input.DurationSeconds
		if duration < cfg.MinDurationSeconds || duration > cfg.MaxDurationSeconds {
			return nil, validationError(fmt.Sprintf("durationSeconds must be between %d and %d",
				cfg.MinDurationSeconds, cfg.MaxDurationSeconds))
		}
	}

	visibility := cfg.DefaultVisibilityRadius
	if input.VisibilityRadius != nil {
		visibility = *input.VisibilityRadius
		if !(visibility >= cfg.MinVisibilityRadius && visibility <= cfg.MaxVisibilityRadius) {
			return nil, validationError(fmt.Sprintf("visibilityRadius must be between %.0f and %.0f",
				cfg.MinVisibilityRadius, cfg.MaxVisibilityRadius))
		}
	}

	expiresAt, err := srv.resolveExpiry(input, now)
	if err != nil {
		return nil, err
	}

	return &entity.Moment{
		ID:               uuid.New(),
		UserID:           input.UserID,
		VideoURL:         input.VideoURL,
		ThumbnailURL:     input.ThumbnailURL,
		Caption:          input.Caption,
		Position:         input.Location,
		LocationName:     input.LocationName,
		DurationSeconds:  duration,
		VisibilityRadius: visibility,
		ExpiresAt:        expiresAt,
		IsActive:         true,
		CreatedAt:        now,
	}, nil
}

// resolveExpiry picks the explicit expiry, then the hour offset, then the default.
// An explicit expiry in the past is kept: the moment is stored but never visible.
func (srv *momentService) resolveExpiry(input *usecase.CreateMomentInput, now time.Time) (time.Time, error) {
	cfg := srv.moment

	if input.ExpiresAt != nil {
		if input.ExpiresAt.After(now.Add(cfg.MaxExpiry)) {
			return time.Time{}, validationError(fmt.Sprintf("expiresAt must be within %s", cfg.MaxExpiry))
		}

		return *input.ExpiresAt, nil
	}

	if input.ExpiresInHours != nil {
		offset := time.Duration(*input.ExpiresInHours) * time.Hour
		if offset < cfg.MinExpiry || offset > cfg.MaxExpiry {
			return time.Time{}, validationError(fmt.Sprintf("expiresInHours must be between %.0f and %.0f",
				cfg.MinExpiry.Hours(), cfg.MaxExpiry.Hours()))
		}

		return now.Add(offset), nil
	}

	return now.Add(cfg.DefaultExpiry), nil
}

func validationError(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

// Get returns a moment regardless of visibility.
func (srv *momentService) Get(ctx context.Context, momentID uuid.UUID) (*entity.Moment, error) {
	var moment *entity.Moment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findMoment(ctx, repoFactory, momentID)
		if err != nil {
			return err
		}
		moment = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get moment")
	}

	return moment, nil
}

// ListByUser returns a creator's moments, newest first, including expired ones.
func (srv *momentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Moment, error) {
	var moments []*entity.Moment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.MomentRepo().FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find moments by user")
		}
		moments = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list moments")
	}

	if moments == nil {
		moments = []*entity.Moment{}
	}

	return moments, nil
}

// FindNearby returns visible moments around the observer with their creators.
func (srv *momentService) FindNearby(ctx context.Context, query *usecase.NearbyMomentsQuery) ([]*entity.NearbyMoment, error) {
	if err := validateCoordinate(query.Observer); err != nil {
		return nil, err
	}

	radius, err := resolveRadius(query.RadiusMeters, srv.moment.DefaultRadius, srv.maxRadius)
	if err != nil {
		return nil, err
	}
	if radius == 0 {
		return []*entity.NearbyMoment{}, nil
	}

	now := srv.now()
	var (
		matches  []geo.Match[*entity.Moment]
		creators map[uuid.UUID]*entity.Profile
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		candidates, err := repoFactory.MomentRepo().FindVisible(ctx, geo.BoundAround(query.Observer, radius), now)
		if err != nil {
			return errors.Wrap(err, "failed to find visible moments")
		}

		visible := make([]*entity.Moment, 0, len(candidates))
		for _, candidate := range candidates {
			if candidate.IsVisible(now) {
				visible = append(visible, candidate)
			}
		}

		matches = geo.Nearest(query.Observer, radius, visible, srv.moment.NearbyLimit)
		if len(matches) == 0 {
			return nil
		}

		creators, err = srv.loadCreators(ctx, repoFactory, matches)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby moments")
	}

	nearby := make([]*entity.NearbyMoment, 0, len(matches))
	for _, match := range matches {
		creator, ok := creators[match.Item.UserID]
		if !ok {
			continue
		}
		nearby = append(nearby, &entity.NearbyMoment{
			Moment:         match.Item,
			Creator:        creator,
			DistanceMeters: match.DistanceMeters,
		})
	}

	return nearby, nil
}

func (srv *momentService) loadCreators(ctx context.Context, repoFactory repository.RepositoryFactory, matches []geo.Match[*entity.Moment]) (map[uuid.UUID]*entity.Profile, error) {
	userIDs := make([]uuid.UUID, 0, len(matches))
	seen := make(map[uuid.UUID]struct{}, len(matches))
	for _, match := range matches {
		if _, ok := seen[match.Item.UserID]; ok {
			continue
		}
		seen[match.Item.UserID] = struct{}{}
		userIDs = append(userIDs, match.Item.UserID)
	}

	profiles, err := repoFactory.ProfileRepo().FindByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find moment creators")
	}

	creators := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		creators[profile.UserID] = profile
	}

	return creators, nil
}

// RecordView stores the first view of a moment by viewerID. Repeated calls change nothing.
func (srv *momentService) RecordView(ctx context.Context, momentID, viewerID uuid.UUID) (bool, error) {
	now := srv.now()

	var (
		firstView bool
		creatorID uuid.UUID
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		moment, err := findMoment(ctx, repoFactory, momentID)
		if err != nil {
			return err
		}
		creatorID = moment.UserID

		if _, err := findProfile(ctx, repoFactory, viewerID); err != nil {
			return err
		}

		inserted, err := repoFactory.MomentViewRepo().InsertIfAbsent(ctx, &entity.MomentView{
			ID:       uuid.New(),
			MomentID: momentID,
			ViewerID: viewerID,
			ViewedAt: now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to record moment view")
		}
		if !inserted {
			return nil
		}
		firstView = true

		if err := repoFactory.MomentRepo().IncrementViewCount(ctx, momentID); err != nil {
			return errors.Wrap(err, "failed to increment view count")
		}

		_, err = creditReputation(ctx, repoFactory, &reputationCredit{
			UserID:    moment.UserID,
			Delta:     reputation.DeltaMomentViewed,
			Reason:    reputation.ReasonMomentViewed,
			RelatedID: &moment.ID,
			At:        now,
		})

		return err
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to record view")
	}

	if firstView {
		publishActivity(ctx, srv.eventPublisher, srv.logger, activity{
			Type:      constants.ActivityMomentViewed,
			ActorID:   viewerID,
			TargetID:  creatorID,
			SubjectID: momentID,
			At:        now,
		})
	}

	return firstView, nil
}

// DeactivateExpired flips expired moments to inactive.
func (srv *momentService) DeactivateExpired(ctx context.Context) (int64, error) {
	var count int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.MomentRepo().DeactivateExpired(ctx, srv.now())
		if err != nil {
			return errors.Wrap(err, "failed to deactivate expired moments")
		}
		count = n

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired moments")
	}

	return count, nil
}

func findMoment(ctx context.Context, repoFactory repository.RepositoryFactory, momentID uuid.UUID) (*entity.Moment, error) {
	moment, err := repoFactory.MomentRepo().FindByID(ctx, momentID)
	if err != nil {
		if errors.Is(err, repository.ErrMomentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMomentNotFound, "moment not found")
		}

		return nil, errors.Wrap(err, "failed to find moment")
	}

	return moment, nil
}
