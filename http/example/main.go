/*

Package main provides a toy example use of reply's response stack.

*/
package main

import (
	"embed"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"

	"github.com/tidemill/reply/http/render"
	"github.com/tidemill/reply/http/resp"
	"github.com/tidemill/reply/logger"
)

//go:embed *.tmpl
var files embed.FS

func main() {
	l := logger.New()

	fns := render.Nonce()

	reg := render.NewRegistry()
	reg.Register("tmpl", render.HTMLFiles(files, fns))

	cache := render.NewCache()
	cache.Add("greeting", render.Entry{
		Ext:       "html",
		Templates: map[string]string{"hello": "<h1>Hello, {{.name}}!</h1>"},
		Engines:   map[string]render.Engine{"html": render.HTML(fns)},
	})

	doer := resp.NewResponder(
		resp.WithLogger(l),
		resp.WithRegistry(reg),
		resp.WithCache(cache),
	)

	r := mux.NewRouter()

	// rendered from the embedded template file through the registry
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		doer.Response(w).Render("index.tmpl", map[string]any{"title": "reply"})
	})

	// rendered from the preloaded template cache through a card
	r.HandleFunc("/hello/{name}", func(w http.ResponseWriter, req *http.Request) {
		doer.Response(w, resp.Card("greeting")).Render("hello", map[string]any{
			"name": mux.Vars(req)["name"],
		})
	})

	r.HandleFunc("/api/ping", func(w http.ResponseWriter, req *http.Request) {
		doer.Response(w).JSON(map[string]any{"ping": "pong"})
	})

	r.HandleFunc("/old", func(w http.ResponseWriter, req *http.Request) {
		doer.Response(w).Status(http.StatusMovedPermanently).Redirect("/")
	})

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		doer.Response(w).SendStatus(http.StatusOK)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	h := handlers.CombinedLoggingHandler(os.Stdout, handlers.RecoveryHandler()(r))

	l.Info("listening on :"+port, nil)
	if err := http.ListenAndServe(":"+port, h); err != nil {
		l.Fatal(err.Error(), nil)
	}
}
