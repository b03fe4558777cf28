package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-door-keeper/models"
)

const (
	FieldUID      = "uid"
	FieldCmd      = "cmd"
	FieldDeviceID = "device_id"
	FieldKey      = "key"
	FieldDoorCmd  = "doorcmd"
	FieldGCode    = "gcode"
)

// requiredFields lists, per command, the fields beyond cmd and device_id
// that must be present.
var requiredFields = map[models.Command][]string{
	models.CmdStage1:   {FieldUID},
	models.CmdStage2:   {FieldUID, FieldKey},
	models.CmdStage3:   {FieldUID, FieldKey, FieldDoorCmd},
	models.CmdStage4:   {FieldUID, FieldKey, FieldDoorCmd, FieldGCode},
	models.CmdKeyAuth:  {FieldKey},
	models.CmdChinaUID: {FieldUID},
}

type AccessRequestValidator struct {
}

func NewAccessRequestValidator() Validator {
	return &AccessRequestValidator{}
}

// Validate checks an access request. Without field names every rule that
// applies to the request command is checked.
func (v *AccessRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AccessRequest:
		return v.validateAccessRequest(ctx, value, fields...)
	case *models.AccessRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccessRequest(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AccessRequestValidator) validateAccessRequest(_ context.Context, req models.AccessRequest, fields ...string) error {
	if len(fields) == 0 {
		if req.Cmd == "" {
			return ErrMissingCommand
		}
		required, ok := requiredFields[req.Cmd]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, req.Cmd)
		}
		fields = append([]string{FieldCmd, FieldDeviceID}, required...)
	}

	for _, field := range fields {
		if err := validateField(req, field); err != nil {
			return err
		}
	}
	return nil
}

func validateField(req models.AccessRequest, field string) error {
	switch field {
	case FieldCmd:
		if req.Cmd == "" {
			return ErrMissingCommand
		}
		if _, ok := requiredFields[req.Cmd]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCommand, req.Cmd)
		}
	case FieldDeviceID:
		if req.DeviceID == "" {
			return ErrMissingDeviceID
		}
	case FieldUID:
		if req.UID == "" {
			return ErrMissingUID
		}
	case FieldKey:
		if req.Key == "" {
			return ErrMissingKey
		}
	case FieldDoorCmd:
		if !req.DoorCmd.Valid() {
			return ErrInvalidDoorCommand
		}
	case FieldGCode:
		if req.GCode == "" {
			return ErrMissingGCode
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// ParseAccessRequest validates req and converts it into the command variant
// named by req.Cmd.
func ParseAccessRequest(ctx context.Context, req models.AccessRequest) (models.AccessCommand, error) {
	if err := NewAccessRequestValidator().Validate(ctx, req); err != nil {
		return nil, err
	}

	switch req.Cmd {
	case models.CmdStage1:
		return models.Stage1Request{UID: req.UID, DeviceID: req.DeviceID}, nil
	case models.CmdStage2:
		return models.Stage2Request{UID: req.UID, DeviceID: req.DeviceID, Key: req.Key}, nil
	case models.CmdStage3:
		return models.Stage3Request{UID: req.UID, DeviceID: req.DeviceID, Key: req.Key, DoorCmd: req.DoorCmd}, nil
	case models.CmdStage4:
		return models.Stage4Request{UID: req.UID, DeviceID: req.DeviceID, Key: req.Key, DoorCmd: req.DoorCmd, GCode: req.GCode}, nil
	case models.CmdKeyAuth:
		return models.KeyAuthRequest{UID: req.UID, DeviceID: req.DeviceID, Key: req.Key}, nil
	default:
		return models.ChinaUIDRequest{UID: req.UID, DeviceID: req.DeviceID}, nil
	}
}
