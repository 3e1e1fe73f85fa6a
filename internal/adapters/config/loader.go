// Package config loads evaluation plans from cgraph.yaml files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/cgraph/internal/core/domain"
	"go.trai.ch/cgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the plan at path. If path is a directory, DefaultFileName inside it is read.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}

	var file Configfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}
	if err := validate(&file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	plan := &domain.Plan{
		Graph:     file.Graph,
		Precision: domain.DefaultPrecision,
		Scenarios: make([]domain.Scenario, 0, len(file.Scenarios)),
	}
	if file.Precision != nil {
		plan.Precision = *file.Precision
	}
	for _, dto := range file.Scenarios {
		if len(dto.Set) == 0 {
			l.Logger.Warn(fmt.Sprintf("scenario %q sets no inputs", dto.Name))
		}
		plan.Scenarios = append(plan.Scenarios, domain.NewScenario(dto.Name, dto.Set))
	}
	return plan, nil
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func validate(file *Configfile) error {
	if file.Version != SupportedVersion {
		return zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}
	if file.Graph == "" {
		return domain.ErrMissingGraphName
	}
	if p := file.Precision; p != nil && (*p < 0 || *p > domain.MaxPrecision) {
		return zerr.With(domain.ErrInvalidPrecision, "precision", *p)
	}
	if len(file.Scenarios) == 0 {
		return zerr.With(domain.ErrNoScenarios, "graph", file.Graph)
	}

	seen := make(map[string]int, len(file.Scenarios))
	for i, dto := range file.Scenarios {
		if dto == nil || dto.Name == "" {
			return zerr.With(domain.ErrMissingScenarioName, "index", i)
		}
		if first, dup := seen[dto.Name]; dup {
			err := zerr.With(domain.ErrDuplicateScenarioName, "scenario", dto.Name)
			return zerr.With(err, "first_index", first)
		}
		seen[dto.Name] = i
	}
	return nil
}
