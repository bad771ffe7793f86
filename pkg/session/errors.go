package session

import (
	"errors"
	"net/http"
)

// ErrNotInitialized is returned when a Provider is used before Start. This is
// a configuration error at the call site, not a recoverable condition.
var ErrNotInitialized = errors.New("session: provider used before Start")

// AuthError reports a login, registration or profile call that was rejected
// by the server, or that never reached it. It is safe to show Message to the
// user.
type AuthError struct {
	// Message is the server's error string, or a transport description.
	Message string
	// StatusCode is the HTTP status, or 0 when the request never completed.
	StatusCode int
	// Code carries the authorizer's rejection code on 401 responses
	// ("token_missing" or "token_invalid"), empty otherwise.
	Code string
}

func (e *AuthError) Error() string {
	return e.Message
}

// TokenRejected reports whether the server explicitly rejected the held
// token. This is the out-of-band invalidation signal: the session should be
// torn down and the user told it expired, rather than silently retried.
func (e *AuthError) TokenRejected() bool {
	return e.StatusCode == http.StatusUnauthorized && e.Code == "token_invalid"
}
