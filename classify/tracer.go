package classify

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hebphonics.classify'.
func tracer() tracing.Trace {
	return tracing.Select("hebphonics.classify")
}

// assert panics on an internal invariant violation; never reached on
// well-formed input.
func assert(condition bool, msg string) {
	if !condition {
		panic("classify: " + msg)
	}
}
