// Package evacsimlog provides conditional, leveled debug logging for the
// evacuation simulator.
//
// Debug logging is enabled by setting the EVACSIM_DEBUG environment
// variable:
//
//	EVACSIM_DEBUG=1 evacsim --building floor2.yaml
//
// Info-level messages (tick boundaries, hazard application, reroute
// decisions) are gated on that flag and are no-ops otherwise. Error-level
// messages (the fatal missing-edge-length condition) always reach stderr,
// since they precede an aborting Run.
package evacsimlog
