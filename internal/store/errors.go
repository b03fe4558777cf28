package store

import "errors"

// Lookup failures. Callers match them with [errors.Is].
var (
	ErrTagNotFound = errors.New("tag uid not found")
	ErrPINNotFound = errors.New("gauth pin not found")
)

// Low-level failures wrapped around driver and filesystem errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrEncodingRecord     = errors.New("failed to encode record")
	ErrDecodingRecord     = errors.New("failed to decode record")
	ErrReadingFile        = errors.New("failed to read storage file")
	ErrWritingFile        = errors.New("failed to write storage file")
	ErrUnsupportedDSN     = errors.New("unsupported database dsn")
)
