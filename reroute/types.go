package reroute

import "github.com/katalvlaran/evacsim/config"

// Policy gates the "else" branch of the reroute decision: a forced reroute
// (closed node ahead) always fires regardless of Policy.
type Policy struct {
	MaxStuckTime        float64
	CongestionThreshold int
}

// DefaultPolicy matches spec.md's documented defaults: stuck-time alone
// never triggers a reroute, and ten or more waiters at a node does.
func DefaultPolicy() Policy {
	return Policy{MaxStuckTime: config.InfStuckTime, CongestionThreshold: 10}
}

// FromParams builds a Policy from config.PolicyParams (e.g. as decoded by
// config.LoadDocument).
func FromParams(p config.PolicyParams) Policy {
	return Policy{MaxStuckTime: p.MaxStuckTime, CongestionThreshold: p.CongestionThreshold}
}
