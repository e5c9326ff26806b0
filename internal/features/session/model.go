package session

import "time"

// StorageKey is where the session blob is persisted.
const StorageKey = "auth"

// User is the signed-in administrator.
type User struct {
	Username string `json:"username" example:"admin"`
}

// State is the two-state session: logged out, or logged in as User.
// @Description Current admin session
type State struct {
	IsAuthenticated bool  `json:"isAuthenticated" example:"true"`
	User            *User `json:"user"`
}

// stored is the persisted form of State. SessionID is absent in blobs
// written before tokens were bound to a session.
type stored struct {
	State
	SessionID string `json:"sessionId,omitempty"`
}

// LoginRequest is the login form payload.
// @Description Admin credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginResponse carries the new session and a bearer token for the admin API.
type LoginResponse struct {
	Session   State     `json:"session"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
