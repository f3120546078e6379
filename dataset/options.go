package dataset

import "github.com/viant/simspace/internal/logging"

type options struct {
	logger     *logging.Logger
	maxObjects int
}

// Option customizes loading and saving.
type Option func(*options)

// WithLogger sets the logger for load and save summaries and failures.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxObjects stops loading after n objects; n <= 0 loads everything.
func WithMaxObjects(n int) Option {
	return func(o *options) { o.maxObjects = n }
}

func newOptions(opts []Option) *options {
	ret := &options{logger: logging.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	ret.logger = ret.logger.WithComponent("dataset")
	return ret
}
