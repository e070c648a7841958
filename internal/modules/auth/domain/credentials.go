package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	MsgFillAllFields       = "Please fill in all fields"
	MsgPasswordTooShort    = "Password must be at least 6 characters long"
	MsgPasswordMismatch    = "Passwords do not match"
	MsgAcceptTerms         = "Please agree to the Terms of Service and Privacy Policy"
	MsgNetworkError        = "Network error. Please try again."
	MsgProviderUnavailable = "Google Sign In not available. Please check your connection."
	MsgFederatedFailed     = "Authentication failed. Please try again."
)

const MinPasswordLength = 6

type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// RegistrationRequest holds the signup form. Confirm and AcceptTerms never
// leave the client.
type RegistrationRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Username    string `json:"username" validate:"required"`
	UserType    string `json:"user_type" validate:"required,oneof=worker employer"`
	Password    string `json:"password" validate:"required,min=6"`
	Confirm     string `json:"-" validate:"eqfield=Password"`
	AcceptTerms bool   `json:"-" validate:"eq=true"`
}

// FederatedRequest carries the identity provider's opaque credential as is.
type FederatedRequest struct {
	Credential string
}

// ValidationError is a client-side rejection; it never reaches the network.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var validate = validator.New(validator.WithRequiredStructEnabled())

func (r LoginRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: MsgFillAllFields}
	}
	return nil
}

// Validate reports the first failing rule in form order: every field filled,
// password length, confirmation match, terms accepted.
func (r RegistrationRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: MsgFillAllFields}
	}
	best := len(registrationRules)
	for _, fe := range fieldErrs {
		if rank := ruleRank(fe); rank < best {
			best = rank
		}
	}
	if best == len(registrationRules) {
		return &ValidationError{Message: MsgFillAllFields}
	}
	return &ValidationError{Message: registrationRules[best]}
}

var registrationRules = []string{MsgFillAllFields, MsgPasswordTooShort, MsgPasswordMismatch, MsgAcceptTerms}

func ruleRank(fe validator.FieldError) int {
	switch {
	case fe.Field() == "Password" && fe.Tag() == "min":
		return 1
	case fe.Field() == "Confirm":
		return 2
	case fe.Field() == "AcceptTerms":
		return 3
	default:
		return 0
	}
}
