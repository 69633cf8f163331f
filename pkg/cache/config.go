package cache

// Config describes cache settings loaded from the environment.
type Config struct {
	Capacity int `env:"CACHE_CAPACITY" envDefault:"100"`
}

// NewFromConfig creates a standalone cache from cfg.
func NewFromConfig[V any](cfg Config) (*LRUCache[V], error) {
	return New[V](cfg.Capacity)
}

// SharedFromConfig returns the process-wide cache, creating it from cfg on first use.
func SharedFromConfig(cfg Config) (*LRUCache[any], error) {
	return SharedWithCapacity(cfg.Capacity)
}
