package domain

import "errors"

// Identity is an authenticated user as exposed to clients and bound to a
// session.
type Identity struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

var (
	// ErrInvalidCredentials covers both unknown users and wrong passwords,
	// so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNoSession is returned when a session id is unknown or expired.
	ErrNoSession = errors.New("no active session")
)
