package config

import (
	"errors"
	"math"
)

// Sentinel errors for option validation.
var (
	// ErrBadMaxStuckTime indicates a negative MaxStuckTime was requested.
	ErrBadMaxStuckTime = errors.New("config: MaxStuckTime must be non-negative")

	// ErrBadCongestionThreshold indicates a non-positive CongestionThreshold.
	ErrBadCongestionThreshold = errors.New("config: CongestionThreshold must be positive")

	// ErrBadMaxSteps indicates a non-positive MaxSteps.
	ErrBadMaxSteps = errors.New("config: MaxSteps must be positive")

	// ErrBadDt indicates a non-positive Dt.
	ErrBadDt = errors.New("config: Dt must be positive")

	// ErrBadSpeed indicates a non-positive DefaultSpeedMPS.
	ErrBadSpeed = errors.New("config: DefaultSpeedMPS must be positive")

	// ErrBadAlpha indicates a negative CongestionAlpha.
	ErrBadAlpha = errors.New("config: CongestionAlpha must be non-negative")

	// ErrBadMinSpeedFactor indicates a MinSpeedFactor outside (0, 1].
	ErrBadMinSpeedFactor = errors.New("config: MinSpeedFactor must be in (0, 1]")
)

// PlannerConfig weights the three components of A* edge cost.
type PlannerConfig struct {
	Name              string
	LengthWeight      float64
	CongestionWeight  float64
	RiskWeight        float64
}

// DefaultPlannerConfig returns the baseline weight triple: pure length,
// no congestion or risk sensitivity.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{Name: "baseline", LengthWeight: 1.0}
}

// EngineParams are the fixed-for-a-run knobs of the tick engine.
type EngineParams struct {
	MaxSteps        int
	RNGSeed         *int64
	DefaultSpeedMPS float64
	Dt              float64
	CongestionAlpha float64
	MinSpeedFactor  float64
}

// EngineOption mutates an EngineParams before the engine starts.
type EngineOption func(*EngineParams)

// DefaultEngineParams returns the spec-documented defaults.
func DefaultEngineParams() EngineParams {
	return EngineParams{
		MaxSteps:        10000,
		RNGSeed:         nil,
		DefaultSpeedMPS: 1.3,
		Dt:              1.0,
		CongestionAlpha: 0.5,
		MinSpeedFactor:  0.2,
	}
}

// NewEngineParams returns DefaultEngineParams with every opt applied in order.
func NewEngineParams(opts ...EngineOption) EngineParams {
	p := DefaultEngineParams()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithMaxSteps caps the number of ticks a run may take.
// Panics if steps <= 0.
func WithMaxSteps(steps int) EngineOption {
	if steps <= 0 {
		panic(ErrBadMaxSteps.Error())
	}
	return func(p *EngineParams) { p.MaxSteps = steps }
}

// WithRNGSeed pins the engine's pseudorandom stream to seed.
func WithRNGSeed(seed int64) EngineOption {
	return func(p *EngineParams) { p.RNGSeed = &seed }
}

// WithDefaultSpeedMPS sets EngineParams.DefaultSpeedMPS. The engine reads
// each agent's own SpeedMPS and does not consult this value. Panics if
// speed <= 0.
func WithDefaultSpeedMPS(speed float64) EngineOption {
	if speed <= 0 {
		panic(ErrBadSpeed.Error())
	}
	return func(p *EngineParams) { p.DefaultSpeedMPS = speed }
}

// WithDt sets the fixed tick length in seconds. Panics if dt <= 0.
func WithDt(dt float64) EngineOption {
	if dt <= 0 {
		panic(ErrBadDt.Error())
	}
	return func(p *EngineParams) { p.Dt = dt }
}

// WithCongestionAlpha sets the congestion-speed-penalty sensitivity.
// Panics if alpha < 0.
func WithCongestionAlpha(alpha float64) EngineOption {
	if alpha < 0 {
		panic(ErrBadAlpha.Error())
	}
	return func(p *EngineParams) { p.CongestionAlpha = alpha }
}

// WithMinSpeedFactor floors the congestion speed penalty.
// Panics if factor is outside (0, 1].
func WithMinSpeedFactor(factor float64) EngineOption {
	if factor <= 0 || factor > 1 {
		panic(ErrBadMinSpeedFactor.Error())
	}
	return func(p *EngineParams) { p.MinSpeedFactor = factor }
}

// InfStuckTime is the default MaxStuckTime: stuck-time alone never triggers
// a reroute unless explicitly configured.
var InfStuckTime = math.Inf(1)
