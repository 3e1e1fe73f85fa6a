package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cgraph/internal/adapters/config"
	"go.trai.ch/cgraph/internal/core/domain"
	"go.trai.ch/cgraph/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
version: "1"
graph: wave
precision: 3
scenarios:
  - name: initial
    set: {x3: 3, x1: 1, x2: 2}
  - name: bump-x1
    set: {x1: 2}
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	plan, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, &domain.Plan{
		Graph:     "wave",
		Precision: 3,
		Scenarios: []domain.Scenario{
			{Name: "initial", Assignments: []domain.Assignment{
				{Name: "x1", Value: 1}, {Name: "x2", Value: 2}, {Name: "x3", Value: 3},
			}},
			{Name: "bump-x1", Assignments: []domain.Assignment{{Name: "x1", Value: 2}}},
		},
	}, plan)
	assert.Equal(t, []string{"initial", "bump-x1"}, plan.ScenarioNames())
}

func TestLoad_Directory(t *testing.T) {
	path := writeConfig(t, `
version: "1"
graph: sum
scenarios:
  - name: only
    set: {a: 1}
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	plan, err := loader.Load(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, "sum", plan.Graph)
	assert.Equal(t, domain.DefaultPrecision, plan.Precision)
}

func TestLoad_WarnsOnEmptyScenario(t *testing.T) {
	path := writeConfig(t, `
version: "1"
graph: sum
scenarios:
  - name: noop
`)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(`scenario "noop" sets no inputs`)

	plan, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	require.Len(t, plan.Scenarios, 1)
	assert.Empty(t, plan.Scenarios[0].Assignments)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "invalid yaml",
			content:     "version: [",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "unknown field",
			content:     "version: \"1\"\ngraph: wave\ntasks: {}\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "empty file",
			content:     "",
			expectedErr: domain.ErrUnsupportedConfigVersion,
		},
		{
			name:        "wrong version",
			content:     "version: \"2\"\ngraph: wave\n",
			expectedErr: domain.ErrUnsupportedConfigVersion,
		},
		{
			name:        "missing graph",
			content:     "version: \"1\"\n",
			expectedErr: domain.ErrMissingGraphName,
		},
		{
			name:        "negative precision",
			content:     "version: \"1\"\ngraph: wave\nprecision: -1\n",
			expectedErr: domain.ErrInvalidPrecision,
		},
		{
			name:        "precision too large",
			content:     "version: \"1\"\ngraph: wave\nprecision: 16\n",
			expectedErr: domain.ErrInvalidPrecision,
		},
		{
			name:        "no scenarios",
			content:     "version: \"1\"\ngraph: wave\n",
			expectedErr: domain.ErrNoScenarios,
		},
		{
			name:        "missing scenario name",
			content:     "version: \"1\"\ngraph: wave\nscenarios:\n  - set: {x1: 1}\n",
			expectedErr: domain.ErrMissingScenarioName,
		},
		{
			name: "duplicate scenario name",
			content: "version: \"1\"\ngraph: wave\nscenarios:\n" +
				"  - name: a\n    set: {x1: 1}\n  - name: a\n    set: {x1: 2}\n",
			expectedErr: domain.ErrDuplicateScenarioName,
		},
		{
			name:        "non numeric value",
			content:     "version: \"1\"\ngraph: wave\nscenarios:\n  - name: a\n    set: {x1: one}\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			plan, err := config.NewLoader(mockLogger).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
			assert.Nil(t, plan)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
