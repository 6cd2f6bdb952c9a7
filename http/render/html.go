package render

import (
	"bytes"
	"fmt"
	html "html/template"
	"io/fs"
	"path"
	"sync"
)

// Pool of *bytes.Buffer to prerender documents into.
var pool = &sync.Pool{New: func() any { return new(bytes.Buffer) }}

// HTML constructs an Engine treating src as literal html/template source,
// executed against data with the functions provided.
func HTML(fns html.FuncMap) Engine {
	return func(src string, data map[string]any) (string, error) {
		tmpl, err := html.New("html").Funcs(fns).Parse(src)
		if err != nil {
			return "", fmt.Errorf("cannot parse: %w", err)
		}

		return execute(tmpl, data)
	}
}

// HTMLFiles constructs an Engine treating src as a file path within fsys,
// executed against data with the functions provided.
func HTMLFiles(fsys fs.FS, fns html.FuncMap) Engine {
	return func(src string, data map[string]any) (string, error) {
		tmpl, err := html.New(path.Base(src)).Funcs(fns).ParseFS(fsys, src)
		if err != nil {
			return "", fmt.Errorf("cannot parse %q: %w", src, err)
		}

		return execute(tmpl, data)
	}
}

func execute(tmpl *html.Template, data map[string]any) (string, error) {
	b := pool.Get().(*bytes.Buffer)
	b.Reset()
	defer pool.Put(b)

	if err := tmpl.Execute(b, data); err != nil {
		return "", err
	}

	return b.String(), nil
}
