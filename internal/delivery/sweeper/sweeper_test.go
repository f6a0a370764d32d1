package sweeper

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bumpr/config"
	"bumpr/internal/errors"
	mockUsecase "bumpr/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestSweeper(t *testing.T, momentUC *mockUsecase.MockMomentUsecase) (*sweeper, *fxtest.Lifecycle) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Moment.SweepInterval = 5 * time.Millisecond

	lc := fxtest.NewLifecycle(t)
	d, err := New(Params{
		Lc:       lc,
		Cfg:      cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		MomentUC: momentUC,
	})
	require.NoError(t, err)

	return d.(*sweeper), lc
}

func TestSweeper_DeactivatesOnEachTick(t *testing.T) {
	momentUC := mockUsecase.NewMockMomentUsecase(t)
	s, lc := newTestSweeper(t, momentUC)

	swept := make(chan struct{}, 10)
	momentUC.EXPECT().DeactivateExpired(mock.Anything).
		Run(func(context.Context) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(int64(3), nil)

	lc.RequireStart()
	served := make(chan error, 1)
	go func() { served <- s.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("sweeper did not tick")
		}
	}

	lc.RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestSweeper_ContinuesAfterFailure(t *testing.T) {
	momentUC := mockUsecase.NewMockMomentUsecase(t)
	s, _ := newTestSweeper(t, momentUC)

	swept := make(chan struct{}, 10)
	momentUC.EXPECT().DeactivateExpired(mock.Anything).
		Run(func(context.Context) { swept <- struct{}{} }).
		Return(int64(0), errors.New("database unavailable")).
		Times(2)
	momentUC.EXPECT().DeactivateExpired(mock.Anything).Return(int64(0), nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx) }()

	for range 2 {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("sweeper stopped after a failed sweep")
		}
	}
	cancel()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper ignored context cancellation")
	}
}

func TestSweeper_StopBeforeServe(t *testing.T) {
	s, lc := newTestSweeper(t, mockUsecase.NewMockMomentUsecase(t))

	lc.RequireStart()
	lc.RequireStop()

	assert.False(t, s.running.Load())
}
