package hebparse

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hebphonics.parse'.
func tracer() tracing.Trace {
	return tracing.Select("hebphonics.parse")
}
