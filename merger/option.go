package merger

import "go.uber.org/zap"

// Option configures a merger
type Option func(*options)

type options struct {
	logger      *zap.Logger
	categorized bool
}

func newOptions(opts []Option) *options {
	ret := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// WithLogger sets the logger used to report bundle activity
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCategorized tells the merger that categories and groups were already built,
// so they are reconciled instead of description tags being copied
func WithCategorized(categorized bool) Option {
	return func(o *options) {
		o.categorized = categorized
	}
}
