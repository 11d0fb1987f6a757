package msa

import (
	"github.com/seqforge/mmseqs-msa/pkg/logger"
	"github.com/seqforge/mmseqs-msa/pkg/msa/model"
)

// Option configures a Runner.
type Option func(r *Runner)

// WithExecer substitutes the process executor. Used by tests to fake the
// external binary.
func WithExecer(e Execer) Option {
	return func(r *Runner) {
		r.exec = e
	}
}

// WithLogger sets the structured logger for the runner.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithRunOptions registers observers that follow every run.
func WithRunOptions(opts ...model.RunOption) Option {
	return func(r *Runner) {
		r.runOpts = append(r.runOpts, opts...)
	}
}
