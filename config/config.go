// Package config holds the tunables named in the solver's external
// interface: SP's iteration cap and convergence tolerance, and WalkSAT's
// try/flip/noise parameters. It follows the shape of EricR-saturday's own
// config package: a plain struct with a constructor filling in defaults,
// rather than bare package-level constants, so the experiment harness and
// tests can vary parameters without recompiling.
package config

// Config holds every recognized option from the spec's external interface.
type Config struct {
	// SPMaxIterations bounds Survey Propagation's fixed-point loop.
	SPMaxIterations int
	// SPEpsilon is the per-edge convergence tolerance.
	SPEpsilon float64
	// WSMaxTries bounds WalkSAT's outer restarts.
	WSMaxTries int
	// WSMaxFlips bounds flips attempted within a single WalkSAT try. A
	// value of 0 means "unset"; ResolveWSMaxFlips derives N*3 from the
	// graph size.
	WSMaxFlips int
	// WSNoise is WalkSAT's random-walk probability, in [0,1].
	WSNoise float64
	// Fraction is SID's per-round decimation fraction, in (0,1].
	Fraction float64
	// CNFInstances is how many generated instances the experiment harness
	// runs per (N, alpha) pair. External to the core, but a real harness
	// needs it.
	CNFInstances int
}

// Default returns the recommended configuration from spec §6.
func Default() *Config {
	return &Config{
		SPMaxIterations: 1000,
		SPEpsilon:       0.001,
		WSMaxTries:      100,
		WSMaxFlips:      0,
		WSNoise:         0.57,
		Fraction:        0.1,
		CNFInstances:    10,
	}
}

// ResolveWSMaxFlips returns WSMaxFlips if set, else the spec's default of
// N*3 flips per try, falling back to 1000 when N is 0 (spec §6:
// "default N·3 or 1000").
func (c *Config) ResolveWSMaxFlips(nbVars int) int {
	if c.WSMaxFlips > 0 {
		return c.WSMaxFlips
	}
	if nbVars > 0 {
		return nbVars * 3
	}
	return 1000
}
