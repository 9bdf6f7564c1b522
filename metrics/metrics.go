package metrics

import "sync/atomic"

// Counters aggregates run-level statistics across one or more concurrent
// engine replicas. The zero value is ready to use.
type Counters struct {
	replicasStarted   uint64
	replicasCompleted uint64
	agentsCompleted   uint64
	agentsStranded    uint64
}

// IncReplicaStarted records the start of one replica.
func (c *Counters) IncReplicaStarted() {
	atomic.AddUint64(&c.replicasStarted, 1)
}

// IncReplicaCompleted records the completion of one replica.
func (c *Counters) IncReplicaCompleted() {
	atomic.AddUint64(&c.replicasCompleted, 1)
}

// AddAgentsCompleted adds n to the completed-agent count.
func (c *Counters) AddAgentsCompleted(n int) {
	atomic.AddUint64(&c.agentsCompleted, uint64(n))
}

// AddAgentsStranded adds n to the stranded-agent count (agents still not
// done when a replica hit max_steps).
func (c *Counters) AddAgentsStranded(n int) {
	atomic.AddUint64(&c.agentsStranded, uint64(n))
}

// Snapshot is a point-in-time, non-atomic read of every counter.
type Snapshot struct {
	ReplicasStarted   uint64
	ReplicasCompleted uint64
	AgentsCompleted   uint64
	AgentsStranded    uint64
}

// Snapshot reads every counter under atomic loads.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		ReplicasStarted:   atomic.LoadUint64(&c.replicasStarted),
		ReplicasCompleted: atomic.LoadUint64(&c.replicasCompleted),
		AgentsCompleted:   atomic.LoadUint64(&c.agentsCompleted),
		AgentsStranded:    atomic.LoadUint64(&c.agentsStranded),
	}
}
