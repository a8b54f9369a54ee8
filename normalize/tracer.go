package normalize

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hebphonics.normalize'.
func tracer() tracing.Trace {
	return tracing.Select("hebphonics.normalize")
}
