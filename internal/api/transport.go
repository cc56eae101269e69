package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/biogleam/biogleam/internal/auth"
)

const requestIDHeader = "X-Request-ID"

// Middleware wraps a RoundTripper with one cross-cutting concern. The
// client assembles its transport from these so each concern stays
// independently testable.
type Middleware func(http.RoundTripper) http.RoundTripper

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// chain applies middlewares so the first listed runs outermost.
func chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(mws) - 1; i >= 0; i-- {
		base = mws[i](base)
	}
	return base
}

// bearerAuth attaches the stored token as a bearer credential. Requests
// stay unauthenticated when no token is stored.
func bearerAuth(tokens auth.TokenStore) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			token, err := tokens.Load()
			if err != nil || token == "" {
				return next.RoundTrip(req)
			}
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(req)
		})
	}
}

// requestLogging logs each round trip at debug level.
func requestLogging(log zerolog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)
			evt := log.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("request_id", req.Header.Get(requestIDHeader)).
				Dur("duration", time.Since(start))
			if err != nil {
				evt.Err(err).Msg("HTTP request failed")
				return resp, err
			}
			evt.Int("status", resp.StatusCode).Msg("HTTP request")
			return resp, nil
		})
	}
}
