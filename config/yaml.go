package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape decoded by LoadDocument: a planner weight
// triple, a reroute policy, and engine parameters in one file, following
// the single-config-file convention niceyeti-tabular and beadwork both use
// for their YAML-backed settings.
type document struct {
	Planner struct {
		Name             string  `yaml:"name"`
		LengthWeight     float64 `yaml:"length_weight"`
		CongestionWeight float64 `yaml:"congestion_weight"`
		RiskWeight       float64 `yaml:"risk_weight"`
	} `yaml:"planner"`
	Policy struct {
		MaxStuckTime        *float64 `yaml:"max_stuck_time"`
		CongestionThreshold *int     `yaml:"congestion_threshold"`
	} `yaml:"policy"`
	Engine struct {
		MaxSteps        *int     `yaml:"max_steps"`
		RNGSeed         *int64   `yaml:"rng_seed"`
		DefaultSpeedMPS *float64 `yaml:"default_speed_mps"`
		Dt              *float64 `yaml:"dt"`
		CongestionAlpha *float64 `yaml:"congestion_alpha"`
		MinSpeedFactor  *float64 `yaml:"min_speed_factor"`
	} `yaml:"engine"`
}

// Loaded bundles the three parameter groups decoded from one YAML document.
type Loaded struct {
	Planner PlannerConfig
	Policy  PolicyParams
	Engine  EngineParams
}

// PolicyParams is the YAML-decodable shape of a reroute policy; the
// reroute package's own Policy type is built from it so config stays the
// only package that knows about on-disk field names.
type PolicyParams struct {
	MaxStuckTime        float64
	CongestionThreshold int
}

// LoadDocument decodes a YAML document into planner, policy, and engine
// parameters, applying the same defaults as DefaultPlannerConfig,
// DefaultEngineParams, and a CongestionThreshold of 10 / MaxStuckTime of
// +Inf for any field the document omits.
func LoadDocument(raw []byte) (Loaded, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Loaded{}, fmt.Errorf("config: decode yaml: %w", err)
	}

	planner := DefaultPlannerConfig()
	if doc.Planner.Name != "" {
		planner.Name = doc.Planner.Name
	}
	if doc.Planner.LengthWeight != 0 {
		planner.LengthWeight = doc.Planner.LengthWeight
	}
	planner.CongestionWeight = doc.Planner.CongestionWeight
	planner.RiskWeight = doc.Planner.RiskWeight

	policy := PolicyParams{MaxStuckTime: InfStuckTime, CongestionThreshold: 10}
	if doc.Policy.MaxStuckTime != nil {
		if *doc.Policy.MaxStuckTime < 0 {
			return Loaded{}, ErrBadMaxStuckTime
		}
		policy.MaxStuckTime = *doc.Policy.MaxStuckTime
	}
	if doc.Policy.CongestionThreshold != nil {
		if *doc.Policy.CongestionThreshold <= 0 {
			return Loaded{}, ErrBadCongestionThreshold
		}
		policy.CongestionThreshold = *doc.Policy.CongestionThreshold
	}

	engine := DefaultEngineParams()
	if doc.Engine.MaxSteps != nil {
		engine.MaxSteps = *doc.Engine.MaxSteps
	}
	if doc.Engine.RNGSeed != nil {
		engine.RNGSeed = doc.Engine.RNGSeed
	}
	if doc.Engine.DefaultSpeedMPS != nil {
		engine.DefaultSpeedMPS = *doc.Engine.DefaultSpeedMPS
	}
	if doc.Engine.Dt != nil {
		engine.Dt = *doc.Engine.Dt
	}
	if doc.Engine.CongestionAlpha != nil {
		engine.CongestionAlpha = *doc.Engine.CongestionAlpha
	}
	if doc.Engine.MinSpeedFactor != nil {
		engine.MinSpeedFactor = *doc.Engine.MinSpeedFactor
	}

	return Loaded{Planner: planner, Policy: policy, Engine: engine}, nil
}
