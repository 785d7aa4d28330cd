package dashboard

// renderCache keeps the last rendered string per screen region. Unchanged
// regions are reused verbatim so the terminal renderer sees byte-identical
// output and skips the write.
type renderCache struct {
	regions map[string]string
}

func newRenderCache() *renderCache {
	return &renderCache{regions: make(map[string]string)}
}

// Get returns the cached string for a region.
func (c *renderCache) Get(region string) (string, bool) {
	s, ok := c.regions[region]
	return s, ok
}

// Put stores the rendered string for a region and reports whether it differs
// from what was cached before.
func (c *renderCache) Put(region, content string) bool {
	prev, ok := c.regions[region]
	c.regions[region] = content
	return !ok || prev != content
}

// Drop removes a single region so the next render recomputes it.
func (c *renderCache) Drop(region string) {
	delete(c.regions, region)
}

// Invalidate drops all cached regions, forcing a full re-render. Called when
// the terminal is resized or the theme changes.
func (c *renderCache) Invalidate() {
	c.regions = make(map[string]string)
}
