package dto

type UserProfile struct {
	ID         int64   `json:"id,omitempty"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	UserType   string  `json:"user_type"`
	TrustScore float64 `json:"trust_score,omitempty"`
	Level      int     `json:"level,omitempty"`
	XPPoints   int     `json:"xp_points,omitempty"`
}

type WhoAmIOutput struct {
	Authenticated bool
	HasUser       bool
	User          UserProfile
	Token         string
}
