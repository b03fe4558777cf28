package totp

import (
	"crypto/rand"
	"io"
	"time"
)

// Engine binds the TOTP parameters and the clock used by the service layer.
type Engine struct {
	Period int
	Digits int
	Window int

	Now  func() time.Time
	Rand io.Reader
}

// NewEngine returns an [Engine]; zero parameters fall back to the defaults.
func NewEngine(period, digits, window int) *Engine {
	e := &Engine{Period: period, Digits: digits, Window: window, Now: time.Now, Rand: rand.Reader}
	if e.Period <= 0 {
		e.Period = DefaultPeriod
	}
	if e.Digits <= 0 {
		e.Digits = DefaultDigits
	}
	if e.Window < 0 {
		e.Window = DefaultWindow
	}
	return e
}

// Code returns the current code for a base32 secret.
func (e *Engine) Code(secret string) (string, error) {
	key, err := DecodeBase32(secret)
	if err != nil {
		return "", err
	}
	return GenerateCode(key, Counter(e.Now(), e.Period), e.Digits), nil
}

// Validate checks code against a base32 secret at the current time.
func (e *Engine) Validate(secret, code string) (bool, error) {
	key, err := DecodeBase32(secret)
	if err != nil {
		return false, err
	}
	return ValidateCode(code, key, Counter(e.Now(), e.Period), e.Window, e.Digits)
}

// NewSecret returns a fresh random base32 secret.
func (e *Engine) NewSecret() (string, error) {
	return GenerateRandomSecret(e.Rand, DefaultSecretLength)
}
