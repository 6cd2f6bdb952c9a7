package resp_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidemill/reply/http/render"
	"github.com/tidemill/reply/http/resp"
)

func TestNewResponderDefaults(t *testing.T) {
	// Arrange
	d := newResponder()
	w := httptest.NewRecorder()

	// Act: the default registry serves html and tmpl extensions
	doc, err := d.Response(w).RenderString("hello.tmpl", nil)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "hello.tmpl", doc)
}

func TestResponderSharedAcrossResponses(t *testing.T) {
	// Arrange
	eng := &echoEngine{doc: "ok"}
	reg := render.NewRegistry()
	reg.Register("html", eng.render)
	d := newResponder(resp.WithRegistry(reg))

	// Act: each Response is single-use, the Responder is not
	first := d.Response(httptest.NewRecorder())
	second := d.Response(httptest.NewRecorder())
	require.Nil(t, first.Send("one"))
	require.Nil(t, second.Send("two"))

	// Assert
	require.ErrorIs(t, first.Send("again"), resp.ErrClosed)
	require.ErrorIs(t, second.JSON(nil), resp.ErrClosed)

	// RenderString computes without writing, so a closed Response can still use it
	doc, err := second.RenderString("index.html", nil)
	require.Nil(t, err)
	require.Equal(t, "ok", doc)
}
