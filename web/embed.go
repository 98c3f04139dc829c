// Package web embeds the console's static pages.
package web

import (
	"embed"
	"log/slog"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Page returns a handler serving one embedded page.
func Page(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := staticFS.ReadFile("static/" + name)
		if err != nil {
			slog.Error("web: embedded page missing", "page", name, "error", err)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(data); err != nil {
			slog.Debug("web: failed to write page", "page", name, "error", err)
		}
	})
}
