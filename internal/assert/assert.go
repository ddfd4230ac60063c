// Package assert reports programmer errors. Builds tagged debug panic on a
// failed assertion; every other build logs the failure and lets the caller
// fall through to its no-op path.
package assert

import (
	"fmt"
	"log/slog"
)

// That checks cond and reports msg (formatted with args) when it is false.
// It returns cond so callers can bail out with `if !assert.That(...) { return }`.
//
// Parameters:
//   - cond: the condition expected to hold
//   - msg: a format string describing the violated expectation
//   - args: format arguments for msg
//
// Returns:
//   - bool: cond, unchanged
func That(cond bool, msg string, args ...any) bool {
	if !cond {
		fail(fmt.Sprintf(msg, args...))
	}
	return cond
}

func report(msg string) {
	slog.Error("assertion failed", "msg", msg)
}
