// Package debate implements the turn-taking protocol for a two-persona
// debate: the shared debate state, the persona agents that extend it one
// argument at a time, and the orchestrator that alternates them for a fixed
// number of rounds.
//
// A debate run is single-threaded by design. State and the transcript are
// owned by the goroutine driving the orchestrator; no locking is performed.
package debate
