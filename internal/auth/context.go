package auth

import "context"

type userIDContextKey struct{}

// ContextWithUserID stores the authenticated user id in the context,
// done by the auth middleware after the access token check.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int)
	return userID, ok
}
