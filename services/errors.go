package services

import "errors"

var (
	// ErrEmailTaken is returned when a registration or profile update
	// would reuse another account's email.
	ErrEmailTaken = errors.New("email already in use")

	// ErrForbidden means the entity exists but belongs to another user.
	ErrForbidden = errors.New("not authorized to access this resource")

	// ErrPremiumRequired means the trial/entitlement gate rejected the
	// operation. Handlers translate it into an upsell response, never a
	// server error.
	ErrPremiumRequired = errors.New("premium subscription required")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
