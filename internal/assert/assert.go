// Package assert is the fail-fast primitive for internal invariant
// violations. A failed assertion means a compiler bug, not a user error: it
// panics with a Failure and is never recovered inside the core.
package assert

import "fmt"

// Failure is the panic value raised by a failed assertion.
type Failure struct {
	Msg string
}

func (f Failure) Error() string {
	return "assertion failed: " + f.Msg
}

// Level controls whether assertions are evaluated.
type Level uint8

const (
	// LevelOff disables assertion checks entirely.
	LevelOff Level = iota
	// LevelNormal enables assertion checks.
	LevelNormal
)

// current is a process-wide slot. It is installed once at startup (default
// LevelNormal) and may be overridden by a test harness via SetLevel; the
// returned previous value restores it on teardown.
var current = LevelNormal

// SetLevel replaces the assertion level and returns the previous one.
func SetLevel(l Level) Level {
	prev := current
	current = l
	return prev
}

// That panics with a Failure unless cond holds.
func That(cond bool, format string, args ...any) {
	if current == LevelOff || cond {
		return
	}
	panic(Failure{Msg: fmt.Sprintf(format, args...)})
}

// Failf unconditionally raises an assertion failure.
func Failf(format string, args ...any) {
	panic(Failure{Msg: fmt.Sprintf(format, args...)})
}
