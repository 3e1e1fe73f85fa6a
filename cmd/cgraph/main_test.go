package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cgraph/internal/adapters/telemetry"
	"go.trai.ch/cgraph/internal/app"
	"go.trai.ch/cgraph/internal/core/domain"
	"go.trai.ch/cgraph/internal/core/ports/mocks"
	"go.trai.ch/cgraph/internal/engine/catalog"
	"go.trai.ch/cgraph/internal/engine/evaluator"
	"go.uber.org/mock/gomock"
)

func newProvider(loader *mocks.MockConfigLoader, log *mocks.MockLogger) ComponentProvider {
	tracer := telemetry.NewNoOpTracer()
	application := app.New(loader, catalog.NewDefault(), evaluator.New(tracer), nil, tracer, log)
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

func TestRun_Success(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	provider := newProvider(mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run(context.Background(), []string{"eval", "cube", "--set", "x=2"}, stdout, stderr, provider)

	assert.Equal(t, 0, code)
	assert.Equal(t, "✓ eval = 8.00000 [recomputed 1/1: root]\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrGraphNotFound.Error())
	})
	provider := newProvider(mocks.NewMockConfigLoader(ctrl), mockLogger)

	code := run(context.Background(), []string{"eval", "nope", "-s", "x=1"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, code)
}

func TestRun_ScenarioFailedIsNotLoggedTwice(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load("cgraph.yaml").Return(&domain.Plan{
		Graph:     "sum",
		Precision: 5,
		Scenarios: []domain.Scenario{domain.NewScenario("bad", map[string]float64{"z": 1})},
	}, nil)
	// No Error expectation: the logger must stay silent.
	provider := newProvider(mockLoader, mocks.NewMockLogger(ctrl))

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	code := run(context.Background(), []string{"run"}, stdout, stderr, provider)

	assert.Equal(t, 1, code)
	assert.Equal(t, "● sum (1 scenario)\n", stdout.String())
	assert.Contains(t, stderr.String(), "✗ bad: ")
}
