package service

import (
	"errors"

	"github.com/MKhiriev/go-door-keeper/internal/antitamper"
	"github.com/MKhiriev/go-door-keeper/internal/authz"
	"github.com/MKhiriev/go-door-keeper/internal/store"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrVerificationFailed = errors.New("verification failed")
	ErrNotAllowedOnDevice = errors.New("tag not allowed on this device")
	ErrPersistence        = errors.New("failed to persist tag record")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Re-exported so that transports match on service errors only.
var (
	ErrTagNotFound       = store.ErrTagNotFound
	ErrPINNotFound       = store.ErrPINNotFound
	ErrAlreadyPopulated  = antitamper.ErrAlreadyPopulated
	ErrKeyNameNotDefined = antitamper.ErrKeyNameNotDefined
	ErrNoSecondaryFactor = authz.ErrNoSecondaryFactor
)
