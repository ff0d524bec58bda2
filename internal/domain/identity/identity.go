package identity

import "context"

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID string
	Role   string
	Token  string
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// TokenFromContext returns the caller's raw bearer token, or "".
func TokenFromContext(ctx context.Context) string {
	id, _ := FromContext(ctx)
	return id.Token
}
