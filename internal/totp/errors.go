package totp

import "errors"

var (
	ErrInvalidSecret       = errors.New("invalid base32 secret")
	ErrInvalidCodeLength   = errors.New("invalid code length")
	ErrInsufficientEntropy = errors.New("insufficient entropy for secret generation")
)
