// Package scheduling groups the time- and worker-based dispatch primitives:
// timerqueue (deadline dispatch from a single worker), lazypool (workers
// that exist only while work exists), and repeat (guarded periodic tasks).
package scheduling
