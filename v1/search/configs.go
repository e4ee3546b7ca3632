package search

const (
	// DefaultLimit is the number of cards returned when a query sets no limit.
	DefaultLimit = 5

	// MaxLimit caps the number of cards a single query may return.
	MaxLimit = 50

	// DefaultMaxDistance is the cosine distance cut-off used when a query sets none.
	DefaultMaxDistance float32 = 0.7

	// DefaultCacheSize is the number of query embeddings kept in memory.
	DefaultCacheSize = 1024
)

// Config holds the query defaults of the search service.
type Config struct {
	DefaultLimit       int     `yaml:"default_limit" envconfig:"SEARCH_DEFAULT_LIMIT"`
	DefaultMaxDistance float32 `yaml:"default_max_distance" envconfig:"SEARCH_MAX_DISTANCE"`

	// CacheSize bounds the query embedding cache. Zero selects DefaultCacheSize;
	// a negative value disables the cache.
	CacheSize int `yaml:"cache_size" envconfig:"SEARCH_CACHE_SIZE"`
}

// DefaultConfig mirrors the behaviour of the web search box.
func DefaultConfig() Config {
	return Config{
		DefaultLimit:       DefaultLimit,
		DefaultMaxDistance: DefaultMaxDistance,
		CacheSize:          DefaultCacheSize,
	}
}

func (c Config) limit(requested int) int {
	if requested <= 0 {
		requested = c.DefaultLimit
	}
	if requested <= 0 {
		requested = DefaultLimit
	}
	return min(requested, MaxLimit)
}

func (c Config) maxDistance(requested *float32) float32 {
	if requested != nil {
		return *requested
	}
	if c.DefaultMaxDistance > 0 {
		return c.DefaultMaxDistance
	}
	return DefaultMaxDistance
}
