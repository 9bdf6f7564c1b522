// Package randstream centralizes the engine's deterministic pseudorandom
// stream: service-admission Bernoulli draws and waiter-queue shuffles.
//
// A Stream wraps a single *rand.Rand. math/rand.Rand is not goroutine-safe;
// a Monte-Carlo run gives every replica its own Stream rather than sharing one.
package randstream
