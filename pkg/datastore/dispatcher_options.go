// Copyright © 2018 One Concern

package datastore

import (
	"io"

	"go.uber.org/zap"
)

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithPager sets the pager used by list operations. By default only the first page is written to the output.
func WithPager(p *Pager) Option {
	return func(d *Dispatcher) {
		if p != nil {
			d.pager = p
		}
	}
}

// WithLogger sets the logger of the dispatcher
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithOutput sets the writer used by the default pager
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		if w != nil {
			d.out = w
		}
	}
}
