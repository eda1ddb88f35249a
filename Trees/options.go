package Trees

import (
	"math/rand"

	"go.uber.org/zap"
)

// defaultSeed seeds the shuffle source of the bulk loaders when no source is
// given, so that loads are reproducible.
const defaultSeed = 0

type config struct {
	log        *zap.Logger
	duplicates bool
	rng        *rand.Rand
}

// Option configures a tree or a bulk loader.
type Option func(*config)

// WithLogger sets the logger used for rebalance tracing and invariant
// failures. A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithDuplicates lets the tree hold equal keys as distinct nodes. Equal keys
// descend to the right on insertion. Without it Insert rejects a key that
// is already present.
func WithDuplicates() Option {
	return func(c *config) {
		c.duplicates = true
	}
}

// WithRand sets the source used by the bulk loaders to shuffle their input.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

func newConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return c
}
