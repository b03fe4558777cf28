package antitamper

import "errors"

var (
	ErrAlreadyPopulated  = errors.New("uid already populated")
	ErrKeyNameNotDefined = errors.New("key_name not defined")
	ErrNotPopulated      = errors.New("tag not initialized")
	ErrTextMismatch      = errors.New("anti-tamper text mismatch")
	ErrNoPendingRotation = errors.New("no pending rotation")
	ErrEmptyCandidate    = errors.New("empty anti-tamper candidate")
)
