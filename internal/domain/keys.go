package domain

// ContextKey is a dedicated type for context keys to avoid collisions
type ContextKey string

const (
	KeyUserID   ContextKey = "UserID"
	KeyUsername ContextKey = "Username"
)
