package builder

import (
	"fmt"

	"github.com/google/uuid"
)

// IDFn generates an identifier for the idx-th generated element of a
// kind (zero-based). Implementations used with the default config must
// be pure so that builds stay reproducible.
type IDFn func(kind string, idx int) string

// SequentialIDFn returns "kind-N" with N starting at 1. Deterministic.
func SequentialIDFn(kind string, idx int) string {
	return fmt.Sprintf("%s-%d", kind, idx+1)
}

// UUIDFn returns a random UUID, ignoring kind and idx. Builds using it
// are unique but not reproducible.
func UUIDFn(string, int) string {
	return uuid.NewString()
}

// config is the resolved builder configuration. The counter map is shared
// across constructors of one Build call.
type config struct {
	idFn     IDFn
	counters map[string]int
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{idFn: SequentialIDFn, counters: make(map[string]int)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// nextID hands out the next generated ID for a kind.
func (c config) nextID(kind string) string {
	id := c.idFn(kind, c.counters[kind])
	c.counters[kind]++

	return id
}

// Option mutates the builder configuration.
type Option func(*config)

// WithIDFn replaces the generated-ID scheme. A nil fn is ignored.
func WithIDFn(fn IDFn) Option {
	return func(c *config) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithUUIDs switches generated IDs to random UUIDs.
func WithUUIDs() Option {
	return func(c *config) { c.idFn = UUIDFn }
}
