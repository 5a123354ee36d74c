// Package lazypool provides a worker pool that creates goroutines only
// while jobs exist and retires them when the queue drains. Job panics are
// recovered so a failing job cannot take a worker down with it.
package lazypool
