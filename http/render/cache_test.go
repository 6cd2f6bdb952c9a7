package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidemill/reply/http/render"
)

func TestCacheEntry(t *testing.T) {
	noop := func(src string, data map[string]any) (string, error) { return src, nil }

	// Arrange
	c := render.NewCache()
	c.Add("admin", render.Entry{
		Ext:       ".html",
		Templates: map[string]string{"index": "<h1>hi</h1>"},
		Engines:   map[string]render.Engine{"html": noop},
	})

	// Act + Assert
	e, ok := c.Entry("admin")
	require.True(t, ok)

	src, ok := e.Source("index")
	require.True(t, ok)
	require.Equal(t, "<h1>hi</h1>", src)

	_, ok = e.Source("missing")
	require.False(t, ok)

	eng, ok := e.Engine()
	require.True(t, ok)
	require.NotNil(t, eng)

	_, ok = c.Entry("missing")
	require.False(t, ok)
}

func TestCacheEntryNoEngine(t *testing.T) {
	tcs := []struct {
		name  string
		entry render.Entry
	}{
		{"Zero-Value", render.Entry{}},
		{"No-Engines-Table", render.Entry{Ext: "html"}},
		{"Ext-Miss", render.Entry{Ext: "pug", Engines: map[string]render.Engine{
			"html": func(src string, data map[string]any) (string, error) { return src, nil },
		}}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			c := render.NewCache()
			c.Add("card", tc.entry)

			// Act
			e, ok := c.Entry("card")
			require.True(t, ok)
			eng, ok := e.Engine()

			// Assert
			require.False(t, ok)
			require.Nil(t, eng)
		})
	}
}
