package bst

import (
	"github.com/sirupsen/logrus"
)

// Log is the logger used by trees created without [WithLogger].
// Trees only log at debug level, so nothing is written unless its level is lowered.
var Log = logrus.New()

type options struct {
	logger   *logrus.Logger
	capacity int
}

// Option configures a [Tree] at construction.
type Option func(*options)

// WithLogger makes the tree log to logger instead of [Log].
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity pre-sizes the node arena for n keys.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: Log}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (t *Tree[K, V]) debugEnabled() bool {
	return t.log.IsLevelEnabled(logrus.DebugLevel)
}
