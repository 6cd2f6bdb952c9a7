package render

import (
	html "html/template"
	"net/url"

	"github.com/google/uuid"
)

// Merge collapses the provided function maps into one,
// later maps winning name collisions.
func Merge(maps ...html.FuncMap) html.FuncMap {
	fns := make(html.FuncMap)
	for _, m := range maps {
		for name, fn := range m {
			fns[name] = fn
		}
	}
	return fns
}

// Nonce provides a "nonce" template function generating a uuid.
func Nonce() html.FuncMap {
	return html.FuncMap{"nonce": func() string { return uuid.NewString() }}
}

// RootUrl provides a "rootUrl" template function returning the enclosed
// base URL of the web app.
func RootUrl(u *url.URL) html.FuncMap {
	return html.FuncMap{"rootUrl": func() string { return u.String() }}
}
