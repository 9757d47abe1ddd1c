// Package pprofserver exposes runtime profiles on a separate listener.
package pprofserver

import (
	"net"
	"net/http"
	"net/http/pprof"
	"strings"

	"live-orders-dispatch/internal/http/middleware/staffauth"
	"live-orders-dispatch/internal/logx"
)

// Handler returns the pprof handlers. Loopback callers are let through; everyone else
// needs the staff credentials.
func Handler(creds staffauth.Credentials, logger logx.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)

	for _, name := range []string{"heap", "goroutine", "allocs", "block", "mutex", "threadcreate"} {
		mux.Handle("/debug/pprof/"+name, pprof.Handler(name))
	}
	return staffOrLocalOnly(mux, creds, logx.OrNop(logger))
}

func staffOrLocalOnly(next http.Handler, creds staffauth.Credentials, logger logx.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isLoopback(r.RemoteAddr) {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if !ok || !creds.Check(u, p) {
			logger.Warn("pprof access denied", logx.String("remote", r.RemoteAddr))
			staffauth.Unauthorized(w, "pprof")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isLoopback(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	ip := net.ParseIP(strings.TrimSpace(host))
	return ip != nil && ip.IsLoopback()
}
