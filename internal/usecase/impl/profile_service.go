package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bumpr/config"
	deliverycontext "bumpr/internal/delivery/context"
	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/geo"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/service"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	qrcodeService service.QRCodeService
	proximity     *config.ProximityConfig
	baseScore     int
	logger        *slog.Logger
	now           func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:     params.TxManager,
		qrcodeService: params.QRCodeService,
		proximity:     params.Config.Proximity,
		baseScore:     params.Config.Reputation.BaseScore,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile registers the discoverable state of an externally owned user.
func (srv *profileService) CreateProfile(ctx context.Context, input *usecase.CreateProfileInput) (*entity.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	}

	// The score is seeded here and afterwards only moves through the ledger.
	now := srv.now()
	profile := &entity.Profile{
		UserID:      input.UserID,
		Name:        name,
		Bio:         input.Bio,
		AvatarURL:   input.AvatarURL,
		Interests:   normalizeInterests(input.Interests),
		Status:      entity.ProfileStatusOpen,
		CliqueScore: srv.baseScore,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicateProfile) {
				return errors.Wrap(domainerrors.ErrProfileAlreadyExists, "profile already exists")
			}

			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created", slog.String("user_id", profile.UserID.String()))

	return profile, nil
}

// GetProfile retrieves a profile by its owner.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile applies a partial update of the descriptive fields.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name must not be empty"))
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory, userID)
		if err != nil {
			return err
		}

		applyProfileUpdates(found, input)
		found.UpdatedAt = srv.now()

		if err := repoFactory.ProfileRepo().UpdateDetails(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile details")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

func applyProfileUpdates(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.Interests != nil {
		profile.Interests = normalizeInterests(input.Interests)
	}
}

// normalizeInterests trims tags and drops blanks and duplicates, keeping first-seen order.
func normalizeInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	seen := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		if _, ok := seen[interest]; ok {
			continue
		}
		seen[interest] = struct{}{}
		out = append(out, interest)
	}

	return out
}

// UpdateStatus toggles discoverability.
func (srv *profileService) UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.ProfileStatus) error {
	if !status.IsValid() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("status must be open or busy"))
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().UpdateStatus(ctx, userID, status); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to update status")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update profile status")
	}

	return nil
}

// UpdateLocation stores the caller's last known position.
func (srv *profileService) UpdateLocation(ctx context.Context, userID uuid.UUID, location geo.Coordinate) error {
	if err := validateCoordinate(location); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().UpdateLocation(ctx, userID, location, srv.now()); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
			}

			return errors.Wrap(err, "failed to update location")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update profile location")
	}

	return nil
}

// FindNearby narrows candidates with a bounding box in SQL, then applies the exact
// haversine and freshness checks before sorting and truncating.
func (srv *profileService) FindNearby(ctx context.Context, query *usecase.NearbyUsersQuery) ([]*entity.NearbyProfile, error) {
	if err := validateCoordinate(query.Observer); err != nil {
		return nil, err
	}

	radius, err := resolveRadius(query.RadiusMeters, srv.proximity.DefaultRadius, srv.proximity.MaxRadius)
	if err != nil {
		return nil, err
	}
	if radius == 0 {
		return []*entity.NearbyProfile{}, nil
	}

	now := srv.now()
	var candidates []*entity.Profile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindDiscoverable(ctx, repository.DiscoverableQuery{
			Bound:         geo.BoundAround(query.Observer, radius),
			FreshSince:    now.Add(-srv.proximity.FreshnessWindow),
			ExcludeUserID: query.ExcludeUserID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to find discoverable profiles")
		}
		candidates = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby users")
	}

	discoverable := make([]*entity.Profile, 0, len(candidates))
	for _, candidate := range candidates {
		if query.ExcludeUserID != nil && candidate.UserID == *query.ExcludeUserID {
			continue
		}
		if candidate.IsDiscoverable(now, srv.proximity.FreshnessWindow) {
			discoverable = append(discoverable, candidate)
		}
	}

	matches := geo.Nearest(query.Observer, radius, discoverable, srv.proximity.NearbyLimit)

	nearby := make([]*entity.NearbyProfile, 0, len(matches))
	for _, match := range matches {
		nearby = append(nearby, &entity.NearbyProfile{
			Profile:        match.Item,
			DistanceMeters: match.DistanceMeters,
		})
	}

	srv.log(ctx).Debug("Nearby users resolved",
		slog.Float64("radius", radius),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(nearby)),
	)

	return nearby, nil
}

// GenerateHandshakeQR renders the handshake QR for an existing profile.
func (srv *profileService) GenerateHandshakeQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	qrCode, err := srv.qrcodeService.GenerateHandshakeQR(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate handshake QR")
	}

	return qrCode, nil
}
