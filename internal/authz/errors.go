package authz

import "errors"

var (
	ErrInvalidDoorCommand = errors.New("invalid door command")
	ErrNoSecondaryFactor  = errors.New("no secondary factor configured")
	ErrCodeTooShort       = errors.New("secondary code too short")
	ErrPINMismatch        = errors.New("pin mismatch")
	ErrTOTPMismatch       = errors.New("totp mismatch")
)
