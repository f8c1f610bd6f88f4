package text

import (
	"math"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// CacheKey uniquely identifies a rasterized glyph.
// The size is kept exact: fractional sizes must not alias.
type CacheKey struct {
	// FontID is the process-unique identifier of the font source.
	FontID uint64

	// Size is the face size in pixels per em.
	Size float64

	// Rune is the codepoint the mask was rasterized for.
	Rune rune
}

// flightKey renders the key as a string for singleflight coalescing.
// Built only on the miss path, which runs at most once per key.
func (k CacheKey) flightKey() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendUint(b, k.FontID, 10)
	b = append(b, '/')
	b = strconv.AppendFloat(b, k.Size, 'g', -1, 64)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(k.Rune), 10)
	return string(b)
}

// numShards is the number of cache shards for reduced lock contention.
const numShards = 16

// glyphShard is a single shard of the glyph cache.
type glyphShard struct {
	mu      sync.RWMutex
	entries map[CacheKey]*GlyphImage
}

// GlyphCacheStats holds cache statistics.
type GlyphCacheStats struct {
	// Hits counts lookups served from a populated entry.
	Hits atomic.Uint64

	// Misses counts lookups that found no entry. Concurrent misses for
	// one key each count, so Misses can exceed Rasterizations.
	Misses atomic.Uint64

	// Rasterizations counts actual backend rasterization calls.
	// For any fixed key this increases at most once over the cache's
	// lifetime (until Clear).
	Rasterizations atomic.Uint64
}

// GlyphCache memoizes rasterized glyph masks keyed by
// (font, size, codepoint). The font backend rasterizes one glyph at a
// time, so every composited character funnels through this cache; for
// a fixed key the backend runs at most once, with concurrent callers
// for that key coalesced rather than serialized behind other keys.
//
// Entries are never evicted: the key space is bounded by the glyph
// sets of loaded fonts. Clear empties the cache explicitly.
//
// GlyphCache is safe for concurrent use. Reads of populated entries
// take only a shard read-lock and never wait on rasterization of
// other keys.
type GlyphCache struct {
	shards [numShards]*glyphShard

	// group coalesces concurrent rasterizations per key.
	group singleflight.Group

	// stats holds cache statistics.
	stats GlyphCacheStats
}

// NewGlyphCache creates an empty glyph cache.
func NewGlyphCache() *GlyphCache {
	c := &GlyphCache{}
	for i := 0; i < numShards; i++ {
		c.shards[i] = &glyphShard{
			entries: make(map[CacheKey]*GlyphImage),
		}
	}
	return c
}

// GetOrRasterize returns the cached mask for (face, r), rasterizing it
// through the face's backend on first use.
//
// Unmapped runes rasterize the face's notdef glyph, so a missing glyph
// degrades to the notdef mask here rather than failing. Errors are
// backend failures only.
func (c *GlyphCache) GetOrRasterize(face Face, r rune) (*GlyphImage, error) {
	if face == nil {
		panic("text: GetOrRasterize called with nil face")
	}

	key := CacheKey{FontID: face.Source().ID(), Size: face.Size(), Rune: r}
	shard := c.getShard(key)

	// Fast path: populated entries are read-only forever.
	shard.mu.RLock()
	img, ok := shard.entries[key]
	shard.mu.RUnlock()
	if ok {
		c.stats.Hits.Add(1)
		return img, nil
	}
	c.stats.Misses.Add(1)

	v, err, _ := c.group.Do(key.flightKey(), func() (any, error) {
		// A finished flight may have populated the entry between the
		// miss above and this call.
		shard.mu.RLock()
		img, ok := shard.entries[key]
		shard.mu.RUnlock()
		if ok {
			return img, nil
		}

		rasterized, err := face.Glyph(r)
		if err != nil {
			return nil, err
		}
		c.stats.Rasterizations.Add(1)

		shard.mu.Lock()
		if _, exists := shard.entries[key]; exists {
			shard.mu.Unlock()
			// The coalescing contract makes a second rasterization
			// for one key impossible; reaching this is a defect.
			panic("text: glyph rasterized twice for one cache key")
		}
		shard.entries[key] = rasterized
		shard.mu.Unlock()

		return rasterized, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*GlyphImage), nil
}

// Get returns the cached mask for key, or nil if absent.
// Get never rasterizes.
func (c *GlyphCache) Get(key CacheKey) *GlyphImage {
	shard := c.getShard(key)
	shard.mu.RLock()
	img := shard.entries[key]
	shard.mu.RUnlock()

	if img != nil {
		c.stats.Hits.Add(1)
	} else {
		c.stats.Misses.Add(1)
	}
	return img
}

// Len returns the total number of cached entries.
func (c *GlyphCache) Len() int {
	total := 0
	for i := 0; i < numShards; i++ {
		shard := c.shards[i]
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Clear removes all entries from the cache.
func (c *GlyphCache) Clear() {
	for i := 0; i < numShards; i++ {
		shard := c.shards[i]
		shard.mu.Lock()
		shard.entries = make(map[CacheKey]*GlyphImage)
		shard.mu.Unlock()
	}
}

// Stats returns cache statistics.
func (c *GlyphCache) Stats() (hits, misses, rasterizations uint64) {
	return c.stats.Hits.Load(),
		c.stats.Misses.Load(),
		c.stats.Rasterizations.Load()
}

// HitRate returns the cache hit rate as a percentage.
// Returns 0 if there are no accesses.
func (c *GlyphCache) HitRate() float64 {
	hits := c.stats.Hits.Load()
	misses := c.stats.Misses.Load()
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// ResetStats resets the cache statistics.
func (c *GlyphCache) ResetStats() {
	c.stats.Hits.Store(0)
	c.stats.Misses.Store(0)
	c.stats.Rasterizations.Store(0)
}

// getShard returns the shard for the given key.
func (c *GlyphCache) getShard(key CacheKey) *glyphShard {
	h := key.FontID
	h = h*31 + math.Float64bits(key.Size)
	h = h*31 + uint64(uint32(key.Rune))
	return c.shards[h%numShards]
}

// globalGlyphCache is the default shared glyph cache.
var globalGlyphCache atomic.Pointer[GlyphCache]

func init() {
	globalGlyphCache.Store(NewGlyphCache())
}

// GetGlobalGlyphCache returns the global shared glyph cache.
// Independent layout passes running concurrently share it by default.
func GetGlobalGlyphCache() *GlyphCache {
	return globalGlyphCache.Load()
}

// SetGlobalGlyphCache replaces the global glyph cache.
// The old cache is returned for cleanup if needed.
// Pass nil to install a fresh empty cache.
func SetGlobalGlyphCache(cache *GlyphCache) *GlyphCache {
	if cache == nil {
		cache = NewGlyphCache()
	}
	return globalGlyphCache.Swap(cache)
}
