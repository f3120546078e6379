package cover

import (
	"github.com/viant/simspace/internal/cover/tree"
	"github.com/viant/simspace/internal/logging"
)

type config struct {
	base      float64
	bound     tree.BoundStrategy
	bestFirst bool
	progress  bool
	logger    *logging.Logger
}

// Option customizes Build.
type Option func(*config)

// WithBase sets the level base; values <= 1 fall back to tree.DefaultBase.
func WithBase(base float64) Option {
	return func(c *config) { c.base = base }
}

// WithBoundStrategy selects the pruning bound.
func WithBoundStrategy(s tree.BoundStrategy) Option {
	return func(c *config) { c.bound = s }
}

// WithBestFirst switches queries to best-first traversal.
func WithBestFirst(enabled bool) Option {
	return func(c *config) { c.bestFirst = enabled }
}

// WithProgress logs build progress every tenth of the dataset.
func WithProgress(l *logging.Logger) Option {
	return func(c *config) {
		c.progress = true
		if l != nil {
			c.logger = l
		}
	}
}
