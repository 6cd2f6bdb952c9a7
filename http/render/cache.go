package render

// An Entry is one preloaded record in a Cache: the extension token naming the
// Engine that renders its templates, a table of template sources keyed by
// reference, and the Engines available to this Entry keyed by extension token.
type Entry struct {
	Ext       string
	Templates map[string]string
	Engines   map[string]Engine
}

// Engine retrieves the Engine the Entry's extension token names, if any.
func (e Entry) Engine() (Engine, bool) {
	eng, ok := e.Engines[normalizeExt(e.Ext)]
	if !ok || eng == nil {
		return nil, false
	}
	return eng, true
}

// Source retrieves the template source stored under ref, if any.
func (e Entry) Source(ref string) (string, bool) {
	src, ok := e.Templates[ref]
	return src, ok
}

// A Cache maps opaque card keys to preloaded template Entries.
//
// Like a Registry, a Cache is populated during application setup
// and read-only once requests consult it.
type Cache struct {
	entries map[string]Entry
}

// NewCache constructs an empty *Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Add stores the Entry under the card key.
// Entries normalize their extension tokens so "html" and ".html" match.
func (c *Cache) Add(card string, e Entry) {
	if e.Engines != nil {
		normalized := make(map[string]Engine, len(e.Engines))
		for ext, eng := range e.Engines {
			normalized[normalizeExt(ext)] = eng
		}
		e.Engines = normalized
	}
	c.entries[card] = e
}

// Entry retrieves the Entry stored under the card key, if any.
func (c *Cache) Entry(card string) (Entry, bool) {
	e, ok := c.entries[card]
	return e, ok
}
