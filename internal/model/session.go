package model

// Session is the authenticated identity held by the client.
type Session struct {
	User  *User
	Token string
}

// IsAuthenticated reports whether both the user and the token are present.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}
