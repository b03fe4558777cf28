package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingCommand     = errors.New("cmd is required")
	ErrUnknownCommand     = errors.New("unknown cmd")
	ErrMissingDeviceID    = errors.New("device_id is required")
	ErrMissingUID         = errors.New("uid is required")
	ErrMissingKey         = errors.New("key is required")
	ErrInvalidDoorCommand = errors.New("doorcmd must be open or close")
	ErrMissingGCode       = errors.New("gcode is required")
)
