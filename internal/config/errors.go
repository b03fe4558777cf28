package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrInvalidAppConfigs     = errors.New("invalid app configuration")
	ErrInvalidTOTPConfigs    = errors.New("invalid totp configuration")
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs  = errors.New("invalid server configuration")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configuration")
)
