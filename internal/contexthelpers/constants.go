package contexthelpers

type contextKey string

const UserIDContextKey = contextKey("userID")
const RequestIDContextKey = contextKey("requestID")
