package dto

import (
	"time"

	"worksphere/internal/platform/notice"
)

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Username    string
	UserType    string
	Password    string
	Confirm     string
	AcceptTerms bool
}

// Result is what every credential flow hands back to its caller. Fallback
// is set when the identity provider is unavailable and the caller should
// offer manual credential entry instead.
type Result struct {
	Success  bool
	Message  string
	Payload  map[string]any
	Notice   notice.Notice
	Fallback bool
}

type TokenClaims struct {
	Subject   string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Expired   bool
}
