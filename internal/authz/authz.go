// Package authz decides, after a tag has been verified, whether the door
// action may run or a secondary factor has to be collected first.
package authz

import (
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/go-door-keeper/models"
)

// PINLength is the length of both the TOTP prefix PIN and the standalone NFC PIN.
const PINLength = 4

// FactorKind names the secondary factor configured on a tag.
type FactorKind string

const (
	FactorNone    FactorKind = "none"
	FactorTOTP    FactorKind = "totp"
	FactorTOTPPIN FactorKind = "totp+pin"
	FactorPIN     FactorKind = "pin"
)

// Factor is a secondary factor and the number of characters the reader must
// collect for it.
type Factor struct {
	Kind   FactorKind
	Digits int
}

// Outcome is the verdict of a decision.
type Outcome int

const (
	Deny Outcome = iota
	RequireSecondary
	Authorize
)

func (o Outcome) String() string {
	switch o {
	case RequireSecondary:
		return "require_secondary"
	case Authorize:
		return "authorize"
	default:
		return "deny"
	}
}

// Decision is the result of [Engine.AfterCommit] or [Engine.Secondary].
type Decision struct {
	Outcome Outcome
	// Factor is set for RequireSecondary.
	Factor Factor
	// Action is set for Authorize.
	Action models.DoorCommand
	// Reason is set for Deny.
	Reason error
}

// CodeValidator checks a TOTP code against a base32 secret.
type CodeValidator interface {
	Validate(secret, code string) (bool, error)
}

// Engine evaluates secondary factors. It holds no per-request state.
type Engine struct {
	codes      CodeValidator
	totpDigits int
}

func NewEngine(codes CodeValidator, totpDigits int) *Engine {
	return &Engine{codes: codes, totpDigits: totpDigits}
}

// RequiredFactor derives the secondary factor from the record alone.
func (e *Engine) RequiredFactor(rec models.TagRecord) Factor {
	switch {
	case rec.GAuthSecret != "" && rec.GAuthPIN != "":
		return Factor{Kind: FactorTOTPPIN, Digits: PINLength + e.totpDigits}
	case rec.GAuthSecret != "":
		return Factor{Kind: FactorTOTP, Digits: e.totpDigits}
	case rec.NFCPIN != "":
		return Factor{Kind: FactorPIN, Digits: PINLength}
	default:
		return Factor{Kind: FactorNone}
	}
}

// AfterCommit decides what follows a committed rotation. Closing never needs
// a secondary factor.
func (e *Engine) AfterCommit(rec models.TagRecord, cmd models.DoorCommand) Decision {
	if !cmd.Valid() {
		return deny(ErrInvalidDoorCommand)
	}
	if cmd == models.DoorClose {
		return authorize(cmd)
	}

	f := e.RequiredFactor(rec)
	if f.Kind == FactorNone {
		return authorize(cmd)
	}
	return Decision{Outcome: RequireSecondary, Factor: f}
}

// Secondary evaluates the code collected by the reader. A configured TOTP
// takes precedence over the NFC PIN.
func (e *Engine) Secondary(rec models.TagRecord, cmd models.DoorCommand, code string) Decision {
	if !cmd.Valid() {
		return deny(ErrInvalidDoorCommand)
	}

	switch f := e.RequiredFactor(rec); f.Kind {
	case FactorTOTPPIN:
		if len(code) < PINLength {
			return deny(ErrCodeTooShort)
		}
		if !equal(code[:PINLength], rec.GAuthPIN) {
			return deny(ErrPINMismatch)
		}
		return e.totp(rec.GAuthSecret, code[PINLength:], cmd)
	case FactorTOTP:
		return e.totp(rec.GAuthSecret, code, cmd)
	case FactorPIN:
		if len(code) < PINLength {
			return deny(ErrCodeTooShort)
		}
		if !equal(code[:PINLength], rec.NFCPIN) {
			return deny(ErrPINMismatch)
		}
		return authorize(cmd)
	default:
		return deny(ErrNoSecondaryFactor)
	}
}

func (e *Engine) totp(secret, code string, cmd models.DoorCommand) Decision {
	ok, err := e.codes.Validate(secret, code)
	if err != nil {
		return deny(fmt.Errorf("%w: %w", ErrTOTPMismatch, err))
	}
	if !ok {
		return deny(ErrTOTPMismatch)
	}
	return authorize(cmd)
}

func authorize(cmd models.DoorCommand) Decision {
	return Decision{Outcome: Authorize, Action: cmd}
}

func deny(reason error) Decision {
	return Decision{Outcome: Deny, Reason: reason}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
