package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrRejected            = errors.New("request rejected by remote")
	ErrUnavailable         = errors.New("remote unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected http status")

	ErrEmptyAddress    = errors.New("empty address")
	ErrInvalidAddress  = errors.New("address must include host and scheme")
	ErrMQTTConnect     = errors.New("mqtt connect failed")
	ErrMQTTPublish     = errors.New("mqtt publish failed")
	ErrMQTTTimeout     = errors.New("mqtt publish timed out")
	ErrDoorStateFailed = errors.New("door state query failed")
)
