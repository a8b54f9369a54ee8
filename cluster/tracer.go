package cluster

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hebphonics.tokenize'.
func tracer() tracing.Trace {
	return tracing.Select("hebphonics.tokenize")
}
