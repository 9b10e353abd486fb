package model

// DefaultUserID is used when a request carries no user identity.
const DefaultUserID = "anonymous"

// Scope identifies who a use-case call acts for.
type Scope struct {
	UserID string
}

// NewScope returns a Scope for userID, falling back to DefaultUserID.
func NewScope(userID string) Scope {
	if userID == "" {
		userID = DefaultUserID
	}
	return Scope{UserID: userID}
}
