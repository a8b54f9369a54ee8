package syllable

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hebphonics.syllable'.
func tracer() tracing.Trace {
	return tracing.Select("hebphonics.syllable")
}
