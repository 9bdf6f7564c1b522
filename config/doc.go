// Package config holds the tunable parameter structs shared across the
// planner, reroute, and engine packages, plus functional-option
// constructors and a YAML loader for authoring them on disk.
//
// Following the teacher's builder/dijkstra convention, option constructors
// validate their argument eagerly and panic on a value that can never be
// meaningful (a non-positive step cap or tick length, a negative congestion
// sensitivity); algorithms themselves never panic at runtime. LoadDocument
// reports invalid policy values as errors instead.
package config
