package riemann

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Config holds the solver's tunables (iteration caps, tolerances,
// failure policy). A Config is read-only once a Solver is constructed
// from it and may be shared across concurrently-running solvers.
type Config struct {
	MaxItsMain          int     `yaml:"maxIts_main"`
	MaxItsShock         int     `yaml:"maxIts_shock"`
	NumStepsRarefaction int     `yaml:"numSteps_rarefaction"`
	TolMain             float64 `yaml:"tol_main"`
	TolShock            float64 `yaml:"tol_shock"`
	TolRarefaction      float64 `yaml:"tol_rarefaction"`
	MinPressure         float64 `yaml:"min_pressure"`
	FailureThreshold    float64 `yaml:"failure_threshold"`
	PressureAtFailure   float64 `yaml:"pressure_at_failure"`

	// TraceProfile, when set, records (xi, rho, u, p, e, id) rows in
	// Diagnostics.Trace. Only the state sampled at xi = 0 inside a
	// transonic rarefaction fan is recorded (padded with one sentinel
	// row on each side); other solves leave Trace empty, and the rest
	// of the wave profile is not traced. Off by default: request-scoped
	// tracing has allocation cost that a mesh-level caller solving
	// millions of Riemann problems per step should not pay.
	TraceProfile bool `yaml:"trace_profile"`
}

// DefaultConfig returns the tunables used by the package's end-to-end
// acceptance scenarios (the Sod tube and its harder relatives).
func DefaultConfig() Config {
	return Config{
		MaxItsMain:          200,
		MaxItsShock:         200,
		NumStepsRarefaction: 200,
		TolMain:             1e-6,
		TolShock:            1e-8,
		TolRarefaction:      1e-6,
		MinPressure:         1e-8,
		FailureThreshold:    0.2,
		PressureAtFailure:   1e-3,
	}
}

// Parse decodes a YAML document onto c, leaving fields absent from the
// document untouched — call it on a Config already seeded with
// DefaultConfig() to get override semantics.
func (c *Config) Parse(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Print writes a human-readable summary of the tunables to stdout.
func (c *Config) Print() {
	fmt.Printf("%-24s = %d\n", "maxIts_main", c.MaxItsMain)
	fmt.Printf("%-24s = %d\n", "maxIts_shock", c.MaxItsShock)
	fmt.Printf("%-24s = %d\n", "numSteps_rarefaction", c.NumStepsRarefaction)
	fmt.Printf("%-24s = %8.3e\n", "tol_main", c.TolMain)
	fmt.Printf("%-24s = %8.3e\n", "tol_shock", c.TolShock)
	fmt.Printf("%-24s = %8.3e\n", "tol_rarefaction", c.TolRarefaction)
	fmt.Printf("%-24s = %8.3e\n", "min_pressure", c.MinPressure)
	fmt.Printf("%-24s = %8.3e\n", "failure_threshold", c.FailureThreshold)
	fmt.Printf("%-24s = %8.3e\n", "pressure_at_failure", c.PressureAtFailure)
}
