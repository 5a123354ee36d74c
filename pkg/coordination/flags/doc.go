// Package flags provides small atomic flags used for idempotent state
// transitions: Done (set-once, returns the previous value) and Flag
// (set/reset with atomic exchange).
package flags
