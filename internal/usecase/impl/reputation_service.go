// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"bumpr/config"
	deliverycontext "bumpr/internal/delivery/context"
	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/reputation"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reputationService implements the ReputationUsecase interface.
type reputationService struct {
	txManager    repository.TransactionManager
	historyLimit int
	logger       *slog.Logger
	now          func() time.Time
}

// ReputationServiceParams holds dependencies for ReputationService, injected by Fx.
type ReputationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReputationService is the constructor for reputationService.
func NewReputationService(params ReputationServiceParams) usecase.ReputationUsecase {
	historyLimit := 0
	if params.Config != nil && params.Config.Reputation != nil {
		historyLimit = params.Config.Reputation.HistoryLimit
	}

	return &reputationService{
		txManager:    params.TxManager,
		historyLimit: historyLimit,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *reputationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplyEvent credits the ledger and returns the new score.
func (srv *reputationService) ApplyEvent(ctx context.Context, input *usecase.ApplyReputationInput) (int, error) {
	if !input.Reason.IsValid() {
		return 0, domainerrors.ErrValidationFailed.WithDetails("unknown reputation reason: " + string(input.Reason))
	}

	var score int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		newScore, err := creditReputation(ctx, repoFactory, &reputationCredit{
			UserID:    input.UserID,
			Delta:     input.Delta,
			Reason:    input.Reason,
			RelatedID: input.RelatedID,
			At:        srv.now(),
		})
		if err != nil {
			return err
		}
		score = newScore

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to apply reputation event")
	}

	srv.log(ctx).Info("Reputation event applied",
		slog.String("user_id", input.UserID.String()),
		slog.Int("delta", input.Delta),
		slog.String("reason", string(input.Reason)),
		slog.Int("score", score),
	)

	return score, nil
}

// CurrentScore returns the stored clique score.
func (srv *reputationService) CurrentScore(ctx context.Context, userID uuid.UUID) (int, error) {
	var score int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := findProfile(ctx, repoFactory, userID)
		if err != nil {
			return err
		}
		score = profile.CliqueScore

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to get current score")
	}

	return score, nil
}

// GetSummary returns the reputation read model for userID.
func (srv *reputationService) GetSummary(ctx context.Context, userID uuid.UUID, limit int) (*entity.ReputationSummary, error) {
	if limit <= 0 {
		limit = srv.historyLimit
	}

	var summary *entity.ReputationSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := findProfile(ctx, repoFactory, userID)
		if err != nil {
			return err
		}

		history, err := repoFactory.ReputationRepo().FindByUser(ctx, userID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to find reputation history")
		}
		if history == nil {
			history = []*entity.ReputationEvent{}
		}

		summary = &entity.ReputationSummary{
			Score:           profile.CliqueScore,
			TotalHandshakes: profile.TotalHandshakes,
			TotalMoments:    profile.TotalMoments,
			History:         history,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get reputation summary")
	}

	return summary, nil
}

// PreviewScore evaluates the heuristic. It never touches the ledger.
func (srv *reputationService) PreviewScore(_ context.Context, data *reputation.Data) int {
	if data == nil {
		return reputation.ComputeScore(reputation.NewData(srv.now()), srv.now())
	}

	return reputation.ComputeScore(*data, srv.now())
}
