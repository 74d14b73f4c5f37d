package contextkeys

type contextKey string

const (
	// UserIDKey holds the authenticated user's id.
	UserIDKey contextKey = "userID"
	// UsernameKey holds the authenticated user's login name.
	UsernameKey contextKey = "username"
)
