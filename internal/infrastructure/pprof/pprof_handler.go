package pprof

import (
	"net/http"
	"net/http/pprof"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Prefix путь, под которым монтируется Handler
const Prefix = "/debug/pprof"

// Handler роутер со стандартными эндпоинтами net/http/pprof
func Handler() http.Handler {
	r := chi.NewRouter()

	// Редирект с корня на индекс
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
			return
		}
		pprof.Index(w, r)
	})

	r.HandleFunc("/*", handleProfile)

	return r
}

func handleProfile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, Prefix+"/")

	switch name {
	case "cmdline":
		pprof.Cmdline(w, r)
	case "profile":
		pprof.Profile(w, r)
	case "symbol":
		pprof.Symbol(w, r)
	case "trace":
		pprof.Trace(w, r)
	case "":
		pprof.Index(w, r)
	default:
		// allocs, block, goroutine, heap, mutex, threadcreate
		pprof.Handler(name).ServeHTTP(w, r)
	}
}
