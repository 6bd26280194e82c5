package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bound/internal/adapters/entityfile"
	"go.trai.ch/bound/internal/adapters/logger"
	"go.trai.ch/bound/internal/adapters/memstore"
	"go.trai.ch/bound/internal/app"
	"go.trai.ch/bound/internal/core/domain"
	"go.trai.ch/bound/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(
		mocks.NewMockEntityLoader(ctrl),
		mocks.NewMockEntityRepository[*domain.BaseEntity](ctrl),
		mockLogger,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "bound version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockEntityLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(mockLoader, mocks.NewMockEntityRepository[*domain.BaseEntity](ctrl), mockLogger)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: mockLogger}, func() {}, nil
	}

	mockLoader.EXPECT().Load("missing.yaml").
		Return(domain.Sourced[[]*domain.BaseEntity]{}, domain.ErrEntitiesReadFailed)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"inspect", "missing.yaml"},
		new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_CleanupCalled verifies that the provider cleanup runs after execution.
func TestRun_CleanupCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: app.New(nil, nil, mockLogger), Logger: mockLogger}, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"welcome"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, cleaned)
}

// TestRun_InspectEndToEnd runs inspect against a real fixture with real adapters.
func TestRun_InspectEndToEnd(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	path := filepath.Join(t.TempDir(), "entities.yaml")
	fixture := `version: "1"
entities:
  - id: 0190d4e2-7c1c-7b43-9d52-8b8a4b0f2f10
    createdOn: 2024-01-01T10:00:00Z
  - id: 0190d4e2-7c1c-7b43-9d52-8b8a4b0f2f10
    createdOn: 2024-02-01T10:00:00Z
  - createdOn: 2024-01-15T10:00:00Z
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	stderr := new(bytes.Buffer)
	log := logger.New()
	log.(*logger.Logger).SetOutput(stderr)

	application := app.New(entityfile.NewLoader(log), memstore.NewListRepository[*domain.BaseEntity](), log).
		WithClock(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"inspect", "--log-json", path}, stdout, stderr, provider)
	require.Equal(t, 0, exitCode)

	out := stdout.String()
	assert.Contains(t, out, "entities:     3\n")
	assert.Contains(t, out, "new entities: ✓\n")
	assert.Contains(t, out, "valid:        ✓\n")
	assert.Contains(t, out, "most recent:  0190d4e2-7c1c-7b43-9d52-8b8a4b0f2f10 (created 2024-02-01T10:00:00Z)\n")
	assert.Contains(t, out, "duplicates:\n – 0190d4e2-7c1c-7b43-9d52-8b8a4b0f2f10\n")

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(stderr.Bytes()), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Contains(t, record["msg"], "loaded 3 entities")
}
