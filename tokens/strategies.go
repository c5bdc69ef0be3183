package tokens

import "strings"

// Strategy tries to extract an access token from one source of a request.
// A nil error claims the request for that source, even with an empty token.
// ErrNoTokenPresent passes control to the next Strategy in a Chain.
type Strategy interface {
	Extract(view RequestView) (string, error)
}

// Chain evaluates strategies left-to-right. First claim wins.
type Chain []Strategy

func (c Chain) Extract(view RequestView) (string, error) {
	for _, s := range c {
		if token, err := s.Extract(view); err == nil {
			return token, nil
		}
	}
	return "", ErrNoTokenPresent
}

// HeaderStrategy reads a Bearer authorization header.
// The scheme match is substring-based, and the token is the second
// space-delimited field of the whole header value - a value with extra
// spaces yields only the segment between the first and second space.
type HeaderStrategy struct {
	Key string
}

func (s HeaderStrategy) Extract(view RequestView) (string, error) {
	value := view.Header(s.Key)
	if value == "" || !strings.Contains(value, BearerScheme+" ") {
		return "", ErrNoTokenPresent
	}
	// the scheme match guarantees at least one space, so index 1 exists
	return strings.Split(value, " ")[1], nil
}

// BodyStrategy reads a body field, returned verbatim when non-empty.
type BodyStrategy struct {
	Parameter string
}

func (s BodyStrategy) Extract(view RequestView) (string, error) {
	if value := view.BodyParameter(s.Parameter); value != "" {
		return value, nil
	}
	return "", ErrNoTokenPresent
}

// QueryStrategy reads a query-string parameter, returned verbatim when non-empty.
type QueryStrategy struct {
	Parameter string
}

func (s QueryStrategy) Extract(view RequestView) (string, error) {
	if value := view.QueryParameter(s.Parameter); value != "" {
		return value, nil
	}
	return "", ErrNoTokenPresent
}

// CookieStrategy reads a cookie value out of a raw cookie header.
// Parse falls back to ParseCookieHeader when nil.
type CookieStrategy struct {
	HeaderKey string
	Parameter string
	Parse     CookieParseFunc
}

func (s CookieStrategy) Extract(view RequestView) (string, error) {
	raw := view.Header(s.HeaderKey)
	if raw == "" {
		return "", ErrNoTokenPresent
	}
	parse := s.Parse
	if parse == nil {
		parse = ParseCookieHeader
	}
	if value := parse(raw)[s.Parameter]; value != "" {
		return value, nil
	}
	return "", ErrNoTokenPresent
}
