package tokens

import "errors"

// Access Token transmission per RFC 6750
const (
	BearerScheme         = "Bearer"
	AccessTokenParameter = "access_token"
)

// Default Header Keys used when Options omit them
const (
	DefaultAuthorizationHeaderKey = "Authorization"
	DefaultCookieHeaderKey        = "Cookie"
)

// ErrNoTokenPresent - no source of the request carried an access token.
// Absence, not failure. The caller decides whether a missing token rejects the request.
var ErrNoTokenPresent = errors.New("no access token present")

// Options for ExtractTokenFromRequest.
// Zero fields fall back to the Default Header Keys. A nil *Options is valid.
type Options struct {
	AuthorizationHeaderKey string `json:"authorization_header_key"`
	CookieHeaderKey        string `json:"cookie_header_key"`
}

func (o *Options) withDefaults() Options {
	resolved := Options{
		AuthorizationHeaderKey: DefaultAuthorizationHeaderKey,
		CookieHeaderKey:        DefaultCookieHeaderKey,
	}
	if o == nil {
		return resolved
	}
	if o.AuthorizationHeaderKey != "" {
		resolved.AuthorizationHeaderKey = o.AuthorizationHeaderKey
	}
	if o.CookieHeaderKey != "" {
		resolved.CookieHeaderKey = o.CookieHeaderKey
	}
	return resolved
}

// ExtractTokenFromRequest returns the first access token found in view,
// checking the authorization header, then the body, then the query string,
// then the cookie header. Returns ErrNoTokenPresent when no source carries one.
// Pure - never mutates view, no hidden state, safe for concurrent use.
//
// A source that matches claims the request even when its token turns out
// empty. A scheme-only authorization header ("Bearer ") therefore yields
// ErrNoTokenPresent without consulting body, query or cookies.
func ExtractTokenFromRequest(view RequestView, opts *Options) (string, error) {
	resolved := opts.withDefaults()
	chain := Chain{
		HeaderStrategy{Key: resolved.AuthorizationHeaderKey},
		BodyStrategy{Parameter: AccessTokenParameter},
		QueryStrategy{Parameter: AccessTokenParameter},
		CookieStrategy{HeaderKey: resolved.CookieHeaderKey, Parameter: AccessTokenParameter},
	}
	token, err := chain.Extract(view)
	if err != nil {
		return "", err
	}
	if token == "" {
		// claimed but empty. normalize to explicit absence
		return "", ErrNoTokenPresent
	}
	return token, nil
}
