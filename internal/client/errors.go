package client

import "errors"

var (
	// ErrRefused wraps an err response of the server.
	ErrRefused = errors.New("refused by server")
	// ErrUnexpectedStatus means the server answered with a status that is not
	// valid at the current protocol step.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrNoCode           = errors.New("secondary code required but none provided")
)
