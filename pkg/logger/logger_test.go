package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndGet(t *testing.T) {
	require.NoError(t, Init(Config{Level: "debug", Encoding: "json"}))

	logger := Get()
	require.NotNil(t, logger)

	// Init is once-only; a second call must not replace the logger.
	require.NoError(t, Init(Config{Level: "error", Encoding: "console"}))
	assert.Same(t, logger, Get())
}

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperationKey, "read_csv")
	ctx = context.WithValue(ctx, PathKey, "/tmp/data.csv")

	logger := WithContext(ctx)
	require.NotNil(t, logger)
	logger.Debug("context fields attached")
}

func TestInvalidLevel(t *testing.T) {
	_, err := newLogger(Config{Level: "nope", Encoding: "json"})
	assert.Error(t, err)
}
