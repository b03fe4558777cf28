package adapter

import (
	"context"
	"errors"
)

type multiActuator struct {
	targets []DoorActuator
}

// NewMultiActuator calls every target in order and joins their errors. A
// failing target does not stop the remaining ones.
func NewMultiActuator(targets ...DoorActuator) DoorActuator {
	return &multiActuator{targets: targets}
}

func (m *multiActuator) OpenDoor(ctx context.Context, deviceID, uid string) error {
	return m.each(func(t DoorActuator) error { return t.OpenDoor(ctx, deviceID, uid) })
}

func (m *multiActuator) CloseDoor(ctx context.Context, deviceID, uid string) error {
	return m.each(func(t DoorActuator) error { return t.CloseDoor(ctx, deviceID, uid) })
}

func (m *multiActuator) ToggleDoor(ctx context.Context, deviceID, uid string) error {
	return m.each(func(t DoorActuator) error { return t.ToggleDoor(ctx, deviceID, uid) })
}

func (m *multiActuator) NotifyUnknownTag(ctx context.Context, deviceID, uid string) error {
	return m.each(func(t DoorActuator) error { return t.NotifyUnknownTag(ctx, deviceID, uid) })
}

func (m *multiActuator) NotifyClonedTag(ctx context.Context, deviceID, uid, keyName string) error {
	return m.each(func(t DoorActuator) error { return t.NotifyClonedTag(ctx, deviceID, uid, keyName) })
}

func (m *multiActuator) each(call func(DoorActuator) error) error {
	var errs []error
	for _, t := range m.targets {
		if err := call(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
