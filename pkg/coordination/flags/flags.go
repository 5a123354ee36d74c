package flags

import "sync/atomic"

// Done is a flag that can be set only once. Set reports whether the flag was
// already set, so exactly one caller observes the false -> true transition.
//
// The zero value is not usable; create with NewDone. The flag is backed by a
// shared allocation, so copies of a Done refer to the same bit.
type Done struct {
	v *atomic.Bool
}

// NewDone creates an unset Done flag.
func NewDone() Done {
	return Done{v: new(atomic.Bool)}
}

// Set sets the flag and returns its previous value: false on the first call,
// true on every call after that.
func (d Done) Set() bool {
	return d.v.Swap(true)
}

// IsSet reports whether the flag has been set.
func (d Done) IsSet() bool {
	return d.v.Load()
}

// Flag is a two-state flag that can be set and reset. Copies of a Flag refer
// to the same bit, so a Flag stored in a moved or copied struct stays
// observable through every copy.
type Flag struct {
	v *atomic.Bool
}

// NewFlag creates a Flag with the given initial value.
func NewFlag(value bool) Flag {
	f := Flag{v: new(atomic.Bool)}
	f.v.Store(value)
	return f
}

// Set atomically stores value and returns the prior value.
func (f Flag) Set(value bool) bool {
	return f.v.Swap(value)
}

// Bool returns the current value.
func (f Flag) Bool() bool {
	return f.v.Load()
}
