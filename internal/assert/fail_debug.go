//go:build debug

package assert

// Fatal reports whether a failed assertion panics in this build.
const Fatal = true

func fail(msg string) {
	report(msg)
	panic("assertion failed: " + msg)
}
