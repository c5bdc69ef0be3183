package mw

import "context"

type tokenCtxKey struct{}

// WithAccessToken stores the raw extracted access token in ctx.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

// AccessTokenFromContext reads the raw access token stored by the wrappers.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	ctxVal := ctx.Value(tokenCtxKey{})
	token, ok := ctxVal.(string)
	return token, ok
}
