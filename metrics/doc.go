// Package metrics provides atomic counters a Monte-Carlo run can update
// from multiple concurrent replicas without a mutex.
package metrics
