package contexthelpers

import (
	"context"
)

// UserID returns the ID of the user the request acts on, or "" outside a user scope.
func UserID(ctx context.Context) string {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	if !ok {
		return ""
	}

	return userID
}
