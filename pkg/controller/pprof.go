package controller

import (
	"net/http"
	"net/http/pprof"
)

// Pprof returns the net/http/pprof handlers rooted at "/". Mount it with
// http.StripPrefix under a debug path.
func Pprof() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	for _, name := range []string{"heap", "goroutine", "allocs", "block", "mutex"} {
		mux.Handle("/"+name, pprof.Handler(name))
	}

	return mux
}
