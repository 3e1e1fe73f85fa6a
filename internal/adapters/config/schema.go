package config

// SupportedVersion is the only configuration format version understood by the loader.
const SupportedVersion = "1"

// DefaultFileName is looked up when Load is given a directory.
const DefaultFileName = "cgraph.yaml"

// Configfile represents the structure of the cgraph.yaml configuration file.
type Configfile struct {
	Version   string         `yaml:"version"`
	Graph     string         `yaml:"graph"`
	Precision *int           `yaml:"precision"`
	Scenarios []*ScenarioDTO `yaml:"scenarios"`
}

// ScenarioDTO represents a scenario definition in the configuration.
type ScenarioDTO struct {
	Name string             `yaml:"name"`
	Set  map[string]float64 `yaml:"set"`
}
