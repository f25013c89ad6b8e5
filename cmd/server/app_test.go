package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationRequiresConfig(t *testing.T) {
	t.Parallel()
	app, err := newApplication(nil, nil)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestNewApplicationWiresEngine(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	require.NotNil(t, app.converter)
	got, err := app.converter.Convert("Length", "1.5", "Kilometers", "Meters")
	require.NoError(t, err)
	assert.Equal(t, "1500", got)
}

func TestRunStopsWhenContextCanceled(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRunReportsConfigErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server:\n  port: 70000\n"), 0o600))

	err := run(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
