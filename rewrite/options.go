package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/schuko/tracing"
)

// Option configures a pipeline.
type Option func(p *Pipeline)

// WithValidation sets whether the pipeline validates the tree against the
// schema before the run and after every operation. Defaults to the global
// configuration flag 'rewrite-validate'.
func WithValidation(b bool) Option {
	return func(p *Pipeline) {
		p.validate = b
	}
}

// WithOperationLimit aborts a run with ErrLimit if more than n operations
// would be applied. n ≤ 0 means no limit, which is the default.
func WithOperationLimit(n int) Option {
	return func(p *Pipeline) {
		p.limit = n
	}
}

// WithTrace sets the trace level for the duration of a run.
func WithTrace(level tracing.TraceLevel) Option {
	return func(p *Pipeline) {
		p.level = level
		p.hasLevel = true
	}
}
