// Package staffauth authenticates staff requests with HTTP basic auth and carries the
// caller into the request context as a domain.Actor.
package staffauth

import (
	"context"
	"crypto/subtle"
	"io"
	"net/http"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/logx"
)

// Credentials is the single staff account accepted by the API.
type Credentials struct {
	User string
	Pass string
}

// Configured reports whether both user and password are set.
func (c Credentials) Configured() bool {
	return c.User != "" && c.Pass != ""
}

// Check compares a user/password pair in constant time. Unconfigured credentials
// never match.
func (c Credentials) Check(user, pass string) bool {
	if !c.Configured() {
		return false
	}
	return secureEq(user, c.User) && secureEq(pass, c.Pass)
}

type actorKey struct{}

// WithActor returns a copy of ctx carrying a.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFrom returns the authenticated staff member, or domain.System.
func ActorFrom(ctx context.Context) domain.Actor {
	if a, ok := ctx.Value(actorKey{}).(domain.Actor); ok && a.Name != "" {
		return a
	}
	return domain.System
}

// Middleware rejects requests without valid staff credentials.
func Middleware(creds Credentials, logger logx.Logger) func(http.Handler) http.Handler {
	logger = logx.OrNop(logger)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !creds.Check(user, pass) {
				logger.Warn("staff auth rejected",
					logx.String("path", r.URL.Path),
					logx.Bool("credentials_present", ok),
				)
				Unauthorized(w, "staff")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), domain.Actor{Name: user})))
		})
	}
}

// Unauthorized writes a 401 basic-auth challenge for realm.
func Unauthorized(w http.ResponseWriter, realm string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = io.WriteString(w, `{"error":"unauthorized"}`)
}

func secureEq(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
