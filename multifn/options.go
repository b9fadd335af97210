package multifn

import (
	"github.com/on-the-ground/multi_ive_go/category"
	"go.uber.org/zap"
)

type options struct {
	logger    *zap.Logger
	name      string
	hierarchy func(key, registered any) bool
}

// Option configures a MultiFn.
type Option func(*options)

// WithLogger sets the logger used for registration and dispatch events.
// Default: zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithName names the MultiFn in logs and error messages.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithHierarchy replaces the hierarchy predicate deciding whether a key
// belongs to a registered value. Exact equality always matches regardless.
// Default: category.Isa.
func WithHierarchy(fn func(key, registered any) bool) Option {
	return func(o *options) { o.hierarchy = fn }
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.hierarchy == nil {
		o.hierarchy = category.Isa
	}
	return o
}
