package services

import "context"

type ctxKey string

const sessionTokenKey ctxKey = "sessionToken"

// WithSessionToken returns a context that carries the caller's session token.
func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey, token)
}

// SessionToken returns the token stored by WithSessionToken, or "".
func SessionToken(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}
