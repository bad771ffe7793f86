package domain

import "time"

// ActivityKind enumerates audited account actions.
type ActivityKind string

const (
	ActivityRegister      ActivityKind = "register"
	ActivityLogin         ActivityKind = "login"
	ActivityLogout        ActivityKind = "logout"
	ActivityProfileUpdate ActivityKind = "profile_update"
)

// Activity is a single audit record of an account action.
type Activity struct {
	UserID   string
	Username string
	Kind     ActivityKind
	At       time.Time
}
