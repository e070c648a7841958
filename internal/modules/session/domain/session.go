package domain

import (
	"fmt"
	"strings"
)

// Keys of the client-side key/value store.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyTheme = "theme"
)

const (
	DefaultTrustScore = 75
	DefaultLevel      = 1
	DefaultXPPoints   = 0
)

type UserType string

const (
	UserTypeWorker   UserType = "worker"
	UserTypeEmployer UserType = "employer"
)

// UserProfile is the snapshot returned by the backend. Zero numeric fields
// mean "not provided"; defaults are applied at render time.
type UserProfile struct {
	ID         int64    `json:"id,omitempty"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	UserType   UserType `json:"user_type"`
	TrustScore float64  `json:"trust_score,omitempty"`
	Level      int      `json:"level,omitempty"`
	XPPoints   int      `json:"xp_points,omitempty"`
}

// Session pairs the bearer token with the cached profile. Both are written
// and cleared together.
type Session struct {
	Token string
	User  UserProfile
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q", raw)
}

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
