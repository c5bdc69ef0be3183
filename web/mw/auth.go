package mw

import (
	"context"
	"log"
	"net/http"

	"github.com/zeptools/auth-core/requests"
	"github.com/zeptools/auth-core/responses"
	"github.com/zeptools/auth-core/tokens"
)

// TokenValidator decides whether an extracted access token is acceptable.
// Signature checks, expiry, revocation - all owned by the caller, not this library.
type TokenValidator interface {
	Validate(ctx context.Context, token string) error
}

// Authenticator wraps handlers with access-token extraction.
// A nil Opts uses the default header keys.
// A nil Validator accepts any request that carries a token.
type Authenticator struct {
	Opts      *tokens.Options
	Validator TokenValidator
}

// Wrap returns a handler rejecting requests without an acceptable access token
// with 401 and a Bearer challenge. The raw token is stored in the request
// context for the inner handler. See AccessTokenFromContext.
func (a *Authenticator) Wrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := tokens.ExtractTokenFromRequest(requests.View(r), a.Opts)
		if err != nil {
			log.Printf("[WARN] no access token in request from %s", requests.ClientIP(r))
			writeChallenge(w, "missing access token")
			return
		}
		if a.Validator != nil {
			if err = a.Validator.Validate(r.Context(), token); err != nil {
				log.Printf("[WARN] access token rejected for %s: %v", requests.ClientIP(r), err)
				writeChallenge(w, "invalid access token")
				return
			}
		}
		inner.ServeHTTP(w, r.WithContext(WithAccessToken(r.Context(), token)))
	})
}

// OptionalWrap stores the token in the request context when present and
// acceptable, and forwards either way. Handlers decide what an anonymous
// request may do.
func (a *Authenticator) OptionalWrap(inner http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := tokens.ExtractTokenFromRequest(requests.View(r), a.Opts)
		if err != nil {
			inner.ServeHTTP(w, r) // anonymous
			return
		}
		if a.Validator != nil && a.Validator.Validate(r.Context(), token) != nil {
			inner.ServeHTTP(w, r) // invalid token, still anonymous
			return
		}
		inner.ServeHTTP(w, r.WithContext(WithAccessToken(r.Context(), token)))
	})
}

func writeChallenge(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", tokens.BearerScheme)
	responses.WriteErrorJSON(w, http.StatusUnauthorized, msg)
}
