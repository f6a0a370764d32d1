package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bumpr/internal/delivery/context"
	"bumpr/internal/domain/constants"
	"bumpr/internal/domain/entity"
	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/repository"
	"bumpr/internal/domain/reputation"
	"bumpr/internal/domain/service"
	"bumpr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// handshakeService implements the HandshakeUsecase interface.
type handshakeService struct {
	txManager      repository.TransactionManager
	qrcodeService  service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// HandshakeServiceParams holds dependencies for HandshakeService, injected by Fx.
type HandshakeServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewHandshakeService is the constructor for handshakeService.
func NewHandshakeService(params HandshakeServiceParams) usecase.HandshakeUsecase {
	return &handshakeService{
		txManager:      params.TxManager,
		qrcodeService:  params.QRCodeService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *handshakeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send creates a pending handshake and credits the sender.
func (srv *handshakeService) Send(ctx context.Context, input *usecase.SendHandshakeInput) (*entity.Handshake, error) {
	if input.SenderID == input.ReceiverID {
		return nil, errors.WithStack(domainerrors.ErrSelfHandshake)
	}
	if err := validateCoordinate(input.SenderLocation); err != nil {
		return nil, err
	}

	handshake := &entity.Handshake{
		ID:             uuid.New(),
		SenderID:       input.SenderID,
		ReceiverID:     input.ReceiverID,
		Status:         entity.HandshakeStatusPending,
		SenderLocation: input.SenderLocation,
		Message:        input.Message,
		CreatedAt:      srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProfile(ctx, repoFactory, input.SenderID); err != nil {
			return errors.Wrap(err, "sender")
		}
		if _, err := findProfile(ctx, repoFactory, input.ReceiverID); err != nil {
			return errors.Wrap(err, "receiver")
		}

		handshakeRepo := repoFactory.HandshakeRepo()

		existing, err := handshakeRepo.FindActiveBetween(ctx, input.SenderID, input.ReceiverID)
		if err != nil && !errors.Is(err, repository.ErrHandshakeNotFound) {
			return errors.Wrap(err, "failed to check active handshake")
		}
		if existing != nil {
			return errors.WithStack(domainerrors.ErrDuplicateHandshake)
		}

		if err := handshakeRepo.Create(ctx, handshake); err != nil {
			if errors.Is(err, repository.ErrDuplicateHandshake) {
				return errors.WithStack(domainerrors.ErrDuplicateHandshake)
			}
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to create handshake")
		}

		_, err = creditReputation(ctx, repoFactory, &reputationCredit{
			UserID:    input.SenderID,
			Delta:     reputation.DeltaHandshakeSent,
			Reason:    reputation.ReasonHandshakeSent,
			RelatedID: &handshake.ID,
			At:        handshake.CreatedAt,
		})

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send handshake")
	}

	srv.log(ctx).Info("Handshake sent",
		slog.String("handshake_id", handshake.ID.String()),
		slog.String("sender_id", handshake.SenderID.String()),
		slog.String("receiver_id", handshake.ReceiverID.String()),
	)

	publishActivity(ctx, srv.eventPublisher, srv.logger, activity{
		Type:      constants.ActivityHandshakeSent,
		ActorID:   handshake.SenderID,
		TargetID:  handshake.ReceiverID,
		SubjectID: handshake.ID,
		Status:    string(handshake.Status),
		At:        handshake.CreatedAt,
	})

	return handshake, nil
}

// SendFromQR resolves the receiver encoded in a scanned QR code.
func (srv *handshakeService) SendFromQR(ctx context.Context, input *usecase.SendHandshakeFromQRInput) (*entity.Handshake, error) {
	receiverID, err := srv.qrcodeService.ParseHandshakeQR(input.QRData)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidQRCode)
	}

	return srv.Send(ctx, &usecase.SendHandshakeInput{
		SenderID:       input.SenderID,
		ReceiverID:     receiverID,
		SenderLocation: input.SenderLocation,
		Message:        input.Message,
	})
}

// Respond settles a pending handshake. Accepting credits and counts both parties.
func (srv *handshakeService) Respond(ctx context.Context, input *usecase.RespondHandshakeInput) (*entity.Handshake, error) {
	if !input.Status.IsResponse() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("status must be accepted or declined"))
	}
	if input.ReceiverLocation != nil {
		if err := validateCoordinate(*input.ReceiverLocation); err != nil {
			return nil, err
		}
	}

	var handshake *entity.Handshake
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		handshakeRepo := repoFactory.HandshakeRepo()

		found, err := handshakeRepo.FindByID(ctx, input.HandshakeID)
		if err != nil {
			if errors.Is(err, repository.ErrHandshakeNotFound) {
				return errors.WithStack(domainerrors.ErrHandshakeNotFound)
			}

			return errors.Wrap(err, "failed to find handshake")
		}
		if !found.CanRespond() {
			return errors.WithStack(domainerrors.ErrHandshakeAlreadyResponded)
		}

		found.Respond(input.Status, input.ReceiverLocation, srv.now())

		if err := handshakeRepo.SaveResponse(ctx, found); err != nil {
			if errors.Is(err, repository.ErrHandshakeNotPending) {
				return errors.WithStack(domainerrors.ErrHandshakeAlreadyResponded)
			}

			return errors.Wrap(err, "failed to save handshake response")
		}

		if found.Status == entity.HandshakeStatusAccepted {
			if err := srv.creditAcceptance(ctx, repoFactory, found); err != nil {
				return err
			}
		}
		handshake = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to respond to handshake")
	}

	srv.log(ctx).Info("Handshake responded",
		slog.String("handshake_id", handshake.ID.String()),
		slog.String("status", string(handshake.Status)),
	)

	publishActivity(ctx, srv.eventPublisher, srv.logger, activity{
		Type:      constants.ActivityHandshakeResponded,
		ActorID:   handshake.ReceiverID,
		TargetID:  handshake.SenderID,
		SubjectID: handshake.ID,
		Status:    string(handshake.Status),
		At:        *handshake.RespondedAt,
	})

	return handshake, nil
}

// creditAcceptance rewards both parties and bumps their handshake totals.
func (srv *handshakeService) creditAcceptance(ctx context.Context, repoFactory repository.RepositoryFactory, handshake *entity.Handshake) error {
	for _, userID := range []uuid.UUID{handshake.SenderID, handshake.ReceiverID} {
		if _, err := creditReputation(ctx, repoFactory, &reputationCredit{
			UserID:    userID,
			Delta:     reputation.DeltaHandshakeAccepted,
			Reason:    reputation.ReasonHandshakeAccepted,
			RelatedID: &handshake.ID,
			At:        *handshake.RespondedAt,
		}); err != nil {
			return err
		}

		if err := repoFactory.ProfileRepo().IncrementHandshakes(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to increment handshake total")
		}
	}

	return nil
}

// ListPending lists handshakes waiting for userID's answer.
func (srv *handshakeService) ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error) {
	return srv.list(ctx, func(repo repository.HandshakeRepository) ([]*entity.Handshake, error) {
		return repo.FindPendingForReceiver(ctx, userID)
	})
}

// ListSent lists handshakes userID has sent.
func (srv *handshakeService) ListSent(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error) {
	return srv.list(ctx, func(repo repository.HandshakeRepository) ([]*entity.Handshake, error) {
		return repo.FindSentBy(ctx, userID)
	})
}

// ListAccepted lists userID's connections.
func (srv *handshakeService) ListAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Handshake, error) {
	return srv.list(ctx, func(repo repository.HandshakeRepository) ([]*entity.Handshake, error) {
		return repo.FindAcceptedFor(ctx, userID)
	})
}

func (srv *handshakeService) list(ctx context.Context, find func(repository.HandshakeRepository) ([]*entity.Handshake, error)) ([]*entity.Handshake, error) {
	var handshakes []*entity.Handshake
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := find(repoFactory.HandshakeRepo())
		if err != nil {
			return errors.Wrap(err, "failed to find handshakes")
		}
		handshakes = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list handshakes")
	}

	if handshakes == nil {
		handshakes = []*entity.Handshake{}
	}

	return handshakes, nil
}
