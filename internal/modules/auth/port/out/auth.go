package out

import (
	"context"

	sessiondto "worksphere/internal/modules/session/dto"
)

// Reply is a decoded JSON response. Body is empty when the payload was valid
// JSON but not an object.
type Reply struct {
	Status int
	Body   map[string]any
	Raw    []byte
}

func (r Reply) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Gateway talks JSON to the backend auth API. Transport failures, including
// a non-JSON response, are returned as errors.
type Gateway interface {
	PostJSON(ctx context.Context, path string, body any) (Reply, error)
	GetJSON(ctx context.Context, path, bearer string) (Reply, error)
}

// SessionWriter stores the outcome of a successful exchange.
type SessionWriter interface {
	Save(ctx context.Context, token string, user sessiondto.UserProfile) error
	Token(ctx context.Context) (string, bool)
	UpdateUser(ctx context.Context, user sessiondto.UserProfile) error
}

// IdentityProvider is the federated sign-in collaborator. Available returns
// nil when sign-in can be attempted.
type IdentityProvider interface {
	Available(ctx context.Context) error
	Credential(ctx context.Context) (string, error)
}
