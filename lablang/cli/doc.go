package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lablang.cli'
func tracer() tracing.Trace {
	return tracing.Select("lablang.cli")
}
