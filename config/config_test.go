package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evacsim/config"
)

func TestDefaults(t *testing.T) {
	r := require.New(t)
	pc := config.DefaultPlannerConfig()
	r.Equal("baseline", pc.Name)
	r.Equal(1.0, pc.LengthWeight)
	r.Equal(0.0, pc.CongestionWeight)

	ep := config.DefaultEngineParams()
	r.Equal(10000, ep.MaxSteps)
	r.Nil(ep.RNGSeed)
	r.Equal(1.3, ep.DefaultSpeedMPS)
}

func TestEngineOptions(t *testing.T) {
	r := require.New(t)
	ep := config.NewEngineParams(
		config.WithMaxSteps(500),
		config.WithRNGSeed(7),
		config.WithDt(0.5),
		config.WithCongestionAlpha(1.0),
		config.WithMinSpeedFactor(0.1),
	)
	r.Equal(500, ep.MaxSteps)
	r.NotNil(ep.RNGSeed)
	r.Equal(int64(7), *ep.RNGSeed)
	r.Equal(0.5, ep.Dt)
	r.Equal(1.0, ep.CongestionAlpha)
	r.Equal(0.1, ep.MinSpeedFactor)
}

func TestEngineOptionPanicsOnInvalidInput(t *testing.T) {
	r := require.New(t)
	r.Panics(func() { config.WithMaxSteps(0) })
	r.Panics(func() { config.WithDt(-1) })
	r.Panics(func() { config.WithMinSpeedFactor(0) })
	r.Panics(func() { config.WithMinSpeedFactor(1.5) })
}

func TestLoadDocument(t *testing.T) {
	r := require.New(t)
	raw := []byte(`
planner:
  name: risk_averse
  length_weight: 1
  risk_weight: 2
policy:
  max_stuck_time: 30
  congestion_threshold: 5
engine:
  max_steps: 2000
  dt: 0.5
`)
	loaded, err := config.LoadDocument(raw)
	r.NoError(err)
	r.Equal("risk_averse", loaded.Planner.Name)
	r.Equal(2.0, loaded.Planner.RiskWeight)
	r.Equal(30.0, loaded.Policy.MaxStuckTime)
	r.Equal(5, loaded.Policy.CongestionThreshold)
	r.Equal(2000, loaded.Engine.MaxSteps)
	r.Equal(0.5, loaded.Engine.Dt)
}

func TestLoadDocumentDefaultsOnEmpty(t *testing.T) {
	r := require.New(t)
	loaded, err := config.LoadDocument([]byte(``))
	r.NoError(err)
	r.Equal(10, loaded.Policy.CongestionThreshold)
	r.Equal(10000, loaded.Engine.MaxSteps)
}

func TestLoadDocumentRejectsBadValues(t *testing.T) {
	r := require.New(t)
	_, err := config.LoadDocument([]byte("policy:\n  max_stuck_time: -1\n"))
	r.ErrorIs(err, config.ErrBadMaxStuckTime)

	_, err = config.LoadDocument([]byte("policy:\n  congestion_threshold: 0\n"))
	r.ErrorIs(err, config.ErrBadCongestionThreshold)
}
