package domain

import "strings"

type SessionState string

const (
	SessionLoggedOut       SessionState = "logged_out"
	SessionLoggedIn        SessionState = "logged_in"
	SessionOfflineLoggedIn SessionState = "offline_logged_in"
)

type Credential struct {
	Token    string
	Identity string
}

func (c Credential) IsZero() bool {
	return strings.TrimSpace(c.Token) == ""
}

type Session struct {
	State      SessionState
	Credential Credential
}

// IsAuthenticated is true only for a server-issued credential.
func (s Session) IsAuthenticated() bool {
	return s.State == SessionLoggedIn && !s.Credential.IsZero()
}

func (s Session) IsOffline() bool {
	return s.State == SessionOfflineLoggedIn
}

func (s Session) Identity() string {
	if s.State == SessionLoggedOut {
		return ""
	}

	return s.Credential.Identity
}
