package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCachedValue is raised when a cached value is read from a node whose cache is empty.
	ErrNoCachedValue = zerr.New("node has no cached value")

	// ErrLeafCacheTamper is raised when an input's cache is overwritten with a value other than its own.
	ErrLeafCacheTamper = zerr.New("input cache can only be changed through Set")

	// ErrArityMismatch is returned when an operator is built with the wrong number of arguments.
	ErrArityMismatch = zerr.New("operator arity mismatch")

	// ErrParamMismatch is returned when an operator is built with the wrong number of fixed parameters.
	ErrParamMismatch = zerr.New("operator parameter count mismatch")

	// ErrNilArgument is returned when an operator argument is nil.
	ErrNilArgument = zerr.New("operator argument is nil")

	// ErrNilFunc is returned when an operator is built without a function descriptor.
	ErrNilFunc = zerr.New("operator function is nil")

	// ErrInputAlreadyExists is returned when a graph declares the same input twice.
	ErrInputAlreadyExists = zerr.New("input already exists")

	// ErrInputNotFound is returned when a graph has no input with the requested name.
	ErrInputNotFound = zerr.New("input not found")

	// ErrNodeAlreadyExists is returned when a graph label is registered twice.
	ErrNodeAlreadyExists = zerr.New("node label already exists")

	// ErrNodeNotFound is returned when a graph has no node with the requested label.
	ErrNodeNotFound = zerr.New("node not found")

	// ErrRootNotSet is returned when a graph is evaluated before its root is set.
	ErrRootNotSet = zerr.New("graph root not set")

	// ErrGraphNotFound is returned when the catalog has no graph with the requested name.
	ErrGraphNotFound = zerr.New("graph not found")

	// ErrGraphAlreadyRegistered is returned when two catalog builders share a name.
	ErrGraphAlreadyRegistered = zerr.New("graph already registered")

	// ErrInvalidAssignment is returned when an input assignment is not of the form name=value.
	ErrInvalidAssignment = zerr.New("invalid input assignment, expected name=value")

	// ErrNoScenarios is returned when there is nothing to evaluate.
	ErrNoScenarios = zerr.New("no scenarios to evaluate")

	// ErrEvaluationFailed is returned when a scenario cannot be evaluated.
	ErrEvaluationFailed = zerr.New("evaluation failed")

	// ErrScenarioFailed marks a run that stopped at a failing scenario after reporting it.
	ErrScenarioFailed = zerr.New("one or more scenarios failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrMissingGraphName is returned when the config does not name a graph.
	ErrMissingGraphName = zerr.New("missing graph name")

	// ErrInvalidPrecision is returned when the rounding precision is out of range.
	ErrInvalidPrecision = zerr.New("precision must be between 0 and 15")

	// ErrMissingScenarioName is returned when a configured scenario has no name.
	ErrMissingScenarioName = zerr.New("missing scenario name")

	// ErrDuplicateScenarioName is returned when two configured scenarios share a name.
	ErrDuplicateScenarioName = zerr.New("duplicate scenario name")
)
