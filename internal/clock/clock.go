// Package clock lets time-dependent code take the current time as a dependency.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type Real struct{}

func (Real) Now() time.Time { return time.Now() }

type Fixed struct {
	T time.Time
}

func (c Fixed) Now() time.Time { return c.T }

// Func adapts a function, e.g. a test clock that advances between calls.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }
