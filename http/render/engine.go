package render

import "strings"

// An Engine renders src - either literal template source or a path resolving
// to one, depending on the Engine - with data into a final document.
type Engine func(src string, data map[string]any) (string, error)

// A Registry maps file-extension tokens to the Engine responsible for them.
//
// A Registry is not safe for mutation while requests read from it;
// call Register during application setup only.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry constructs an empty *Registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]Engine)}
}

// Default constructs a *Registry preloaded with the bundled html/template
// Engine under the "html" and "tmpl" extension tokens.
func Default() *Registry {
	reg := NewRegistry()
	eng := HTML(Nonce())
	reg.Register("html", eng)
	reg.Register("tmpl", eng)
	return reg
}

// Register maps the extension token to the Engine.
// The token may be supplied with or without its leading dot.
func (reg *Registry) Register(ext string, eng Engine) {
	reg.engines[normalizeExt(ext)] = eng
}

// Lookup retrieves the Engine registered for the extension token, if any.
func (reg *Registry) Lookup(ext string) (Engine, bool) {
	eng, ok := reg.engines[normalizeExt(ext)]
	if !ok || eng == nil {
		return nil, false
	}
	return eng, true
}

// normalizeExt makes "html", ".html" and "HTML" the same registry key.
func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
