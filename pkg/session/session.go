// Package session is the client SDK for the sportsmeet API. It owns the
// device's belief about whether a player is signed in: the Client issues
// auth requests and mediates credential persistence, and the Provider exposes
// the session state machine to consumers.
package session

// Status is the client's classification of the current session.
type Status string

const (
	// StatusUnknown is the initial state before the provider has started.
	StatusUnknown Status = "unknown"
	// StatusChecking means a restore from the credential store is in flight.
	StatusChecking Status = "checking"
	// StatusAuthenticated means both a token and a cached profile are held.
	StatusAuthenticated Status = "authenticated"
	// StatusAnonymous means no credentials are held.
	StatusAnonymous Status = "anonymous"
)

// Profile is the server-issued user record cached on the device. The server
// owns the source of truth; this copy is invalidated on every login,
// registration, profile update and logout.
type Profile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	FavoriteSport string `json:"favorite_sport,omitempty"`
}

// Session is the in-memory session snapshot. Authenticated iff both Token
// and User are present; Anonymous iff both are absent. No other combination
// is ever constructed.
type Session struct {
	Status Status
	Token  string
	User   *Profile
}

func authenticated(token string, user *Profile) Session {
	return Session{Status: StatusAuthenticated, Token: token, User: user}
}

func anonymous() Session {
	return Session{Status: StatusAnonymous}
}
