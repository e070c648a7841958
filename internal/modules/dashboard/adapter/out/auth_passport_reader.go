package out

import (
	"context"

	authin "worksphere/internal/modules/auth/port/in"
	"worksphere/internal/modules/dashboard/domain"
)

// AuthPassportReader reads passport figures from the auth module's profile fetch.
type AuthPassportReader struct {
	auth authin.Usecase
}

func NewAuthPassportReader(auth authin.Usecase) *AuthPassportReader {
	return &AuthPassportReader{auth: auth}
}

func (r *AuthPassportReader) Passport(ctx context.Context) (domain.Passport, error) {
	user, err := r.auth.Profile(ctx)
	if err != nil {
		return domain.Passport{}, err
	}
	return domain.Passport{TrustScore: user.TrustScore, Level: user.Level, XPPoints: user.XPPoints}, nil
}
