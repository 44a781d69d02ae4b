package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petpal/petpal/pkg/logger"
)

type ctxKey struct{}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNew_JSONWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "petpal")),
		logger.WithContextValue("request_id", ctxKey{}),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.InfoContext(ctx, "hello", logger.UserID("u-1"), logger.Error(errors.New("boom")))

	m := decode(t, &buf)
	assert.Equal(t, "hello", m["msg"])
	assert.Equal(t, "petpal", m["service"])
	assert.Equal(t, "req-1", m["request_id"])
	assert.Equal(t, "u-1", m["user_id"])
	assert.Equal(t, "boom", m["error"])
}

func TestNew_LevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
	log.Info("dropped")
	assert.Zero(t, buf.Len())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("production is json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("production", "petpal"))
		log.Debug("hidden")
		log.Info("shown")

		m := decode(t, &buf)
		assert.Equal(t, "shown", m["msg"])
		assert.Equal(t, "production", m["env"])
		assert.Equal(t, "petpal", m["service"])
	})

	t.Run("development is text at debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithEnvironment("", "petpal"))
		log.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
		assert.Contains(t, buf.String(), "env=development")
	})
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestAttrHelpers_NilValues(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, slog.Attr{}, logger.UserID(nil))
	assert.Equal(t, slog.Attr{}, logger.RequestID(nil))
	assert.Equal(t, "component", logger.Component("auth").Key)
}

func TestDecorator_WithGroupKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithContextValue("rid", ctxKey{})).WithGroup("g")
	ctx := context.WithValue(context.Background(), ctxKey{}, "x")
	log.InfoContext(ctx, "msg")

	m := decode(t, &buf)
	group, ok := m["g"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x", group["rid"])
}
