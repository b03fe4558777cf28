package adapter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
)

// logActuator only records the calls. It is always part of the fan-out so
// that door actions show up in the server log.
type logActuator struct {
	logger *logger.Logger
}

func NewLogActuator(logger *logger.Logger) DoorActuator {
	return &logActuator{logger: logger}
}

func (a *logActuator) OpenDoor(ctx context.Context, deviceID, uid string) error {
	a.log(ctx).Info().Str("device_id", deviceID).Str("uid", uid).Msg("door open")
	return nil
}

func (a *logActuator) CloseDoor(ctx context.Context, deviceID, uid string) error {
	a.log(ctx).Info().Str("device_id", deviceID).Str("uid", uid).Msg("door close")
	return nil
}

func (a *logActuator) ToggleDoor(ctx context.Context, deviceID, uid string) error {
	a.log(ctx).Info().Str("device_id", deviceID).Str("uid", uid).Msg("door toggle")
	return nil
}

func (a *logActuator) NotifyUnknownTag(ctx context.Context, deviceID, uid string) error {
	a.log(ctx).Warn().Str("device_id", deviceID).Str("uid", uid).Msg("unknown tag")
	return nil
}

func (a *logActuator) NotifyClonedTag(ctx context.Context, deviceID, uid, keyName string) error {
	a.log(ctx).Warn().Str("device_id", deviceID).Str("uid", uid).Str("key_name", keyName).Msg("cloned tag")
	return nil
}

// log prefers the request logger so the trace id is attached.
func (a *logActuator) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return a.logger
}
