package cache

import (
	"log/slog"
	"math"
)

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits     uint64  `json:"hits"`
	Misses   uint64  `json:"misses"`
	Total    uint64  `json:"total"`
	HitRate  float64 `json:"hit_rate"` // percent, two decimals
	Size     int     `json:"size"`
	Capacity int     `json:"capacity"`
}

// Stats returns hit/miss counters together with current size and capacity.
func (c *LRUCache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	return Stats{
		Hits:     c.hits,
		Misses:   c.misses,
		Total:    total,
		HitRate:  hitRate(c.hits, total),
		Size:     c.eviction.Len(),
		Capacity: c.capacity,
	}
}

func hitRate(hits, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(hits)/float64(total)*100*100) / 100
}

// LogValue renders the snapshot as a group, so it can be logged with
// slog.Any("cache", c.Stats()).
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("hits", s.Hits),
		slog.Uint64("misses", s.Misses),
		slog.Uint64("total", s.Total),
		slog.Float64("hit_rate", s.HitRate),
		slog.Int("size", s.Size),
		slog.Int("capacity", s.Capacity),
	)
}
