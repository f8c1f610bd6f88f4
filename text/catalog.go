package text

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
)

// Catalog indexes font sources by family name. It is the font-loading
// boundary of the engine: layout asks it for a face per (family, size)
// and unknown families fall back deterministically to the default
// family instead of failing.
//
// Family names match case-insensitively. The first family added
// becomes the default until SetDefault changes it.
//
// Catalog is safe for concurrent use.
type Catalog struct {
	mu            sync.RWMutex
	families      map[string]*FontSource
	names         map[string]string // normalized -> display name
	defaultFamily string            // normalized
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		families: make(map[string]*FontSource),
		names:    make(map[string]string),
	}
}

// Add registers a font source under a family name.
// Adding the same family twice replaces the earlier source.
func (c *Catalog) Add(family string, src *FontSource) {
	key := normalizeFamily(family)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.families[key] = src
	c.names[key] = family
	if c.defaultFamily == "" {
		c.defaultFamily = key
	}
}

// AddBytes parses font data and registers it under the family name.
func (c *Catalog) AddBytes(family string, data []byte, opts ...SourceOption) (*FontSource, error) {
	src, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	c.Add(family, src)
	return src, nil
}

// AddFile loads a font file and registers it under the family name.
func (c *Catalog) AddFile(family, path string, opts ...SourceOption) (*FontSource, error) {
	src, err := NewFontSourceFromFile(path, opts...)
	if err != nil {
		return nil, err
	}
	c.Add(family, src)
	return src, nil
}

// AddSystem locates an installed system font whose file name matches
// the family name and registers it. The search covers the platform's
// font directories.
func (c *Catalog) AddSystem(family string, opts ...SourceOption) (*FontSource, error) {
	path, err := findfont.Find(family)
	if err != nil {
		return nil, fmt.Errorf("text: system font %q not found: %w", family, err)
	}

	// #nosec G304 -- path comes from the system font directories
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read system font: %w", err)
	}

	Logger().Debug("loaded system font", "family", family, "path", path)

	src, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	c.Add(family, src)
	return src, nil
}

// SetDefault selects the fallback family for unknown lookups.
func (c *Catalog) SetDefault(family string) error {
	key := normalizeFamily(family)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.families[key]; !ok {
		return fmt.Errorf("text: set default %q: %w", family, ErrNoSuchFamily)
	}
	c.defaultFamily = key
	return nil
}

// Default returns the display name of the default family, or "" for an
// empty catalog.
func (c *Catalog) Default() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.names[c.defaultFamily]
}

// Lookup returns the source registered for family. Unknown families
// fall back to the default family; an empty catalog returns
// ErrNoSuchFamily.
func (c *Catalog) Lookup(family string) (*FontSource, error) {
	key := normalizeFamily(family)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if src, ok := c.families[key]; ok {
		return src, nil
	}
	if src, ok := c.families[c.defaultFamily]; ok {
		if family != "" {
			Logger().Warn("unknown font family, using default",
				"family", family,
				"default", c.names[c.defaultFamily])
		}
		return src, nil
	}
	return nil, fmt.Errorf("text: lookup %q: %w", family, ErrNoSuchFamily)
}

// Face returns a face for the family at the given size, applying the
// catalog's fallback rule for unknown families.
func (c *Catalog) Face(family string, size float64, opts ...FaceOption) (Face, error) {
	src, err := c.Lookup(family)
	if err != nil {
		return nil, err
	}
	return src.Face(size, opts...), nil
}

// Families returns the registered display names, sorted.
func (c *Catalog) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of registered families.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.families)
}

// normalizeFamily folds a family name for case-insensitive matching.
func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
