package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"bumpr/config"
	deliverycontext "bumpr/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "GORM query failed")
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	var buf bytes.Buffer
	quiet := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	cfg := &config.Config{}
	cfg.Env.Debug = true
	verbose := newGormSlogLogger(newBufferLogger(&buf), cfg)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")

	buf.Reset()
	verbose.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())
}
