package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/utils"
)

// doorStateUnlocked is the state body that means the door is open.
const doorStateUnlocked = "unlocked"

// notification is the JSON body posted to the notify webhook.
type notification struct {
	Event    string `json:"event"`
	DeviceID string `json:"device_id"`
	UID      string `json:"uid"`
	KeyName  string `json:"key_name,omitempty"`
}

type webhookActuator struct {
	client *utils.HTTPClient
	cfg    config.Adapter
	logger *logger.Logger
}

// NewWebhookActuator returns a [DoorActuator] calling the configured URLs.
// Door URLs are requested with GET and device_id/uid query parameters,
// alerts are POSTed as JSON to NotifyURL. Calls for an empty URL are
// skipped.
func NewWebhookActuator(cfg config.Adapter, logger *logger.Logger) DoorActuator {
	return &webhookActuator{
		client: utils.NewHTTPClient("", cfg.RequestTimeout),
		cfg:    cfg,
		logger: logger,
	}
}

func (a *webhookActuator) OpenDoor(ctx context.Context, deviceID, uid string) error {
	return a.door(ctx, a.cfg.DoorOpenURL, deviceID, uid)
}

func (a *webhookActuator) CloseDoor(ctx context.Context, deviceID, uid string) error {
	return a.door(ctx, a.cfg.DoorCloseURL, deviceID, uid)
}

// ToggleDoor asks DoorStateURL for the lock state. Without a state URL the
// door is opened.
func (a *webhookActuator) ToggleDoor(ctx context.Context, deviceID, uid string) error {
	if a.cfg.DoorStateURL == "" {
		return a.OpenDoor(ctx, deviceID, uid)
	}

	resp, err := withTrace(ctx, a.client.R()).
		SetQueryParams(map[string]string{"device_id": deviceID, "uid": uid}).
		Get(a.cfg.DoorStateURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDoorStateFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrDoorStateFailed, err)
	}

	if strings.TrimSpace(string(resp.Body())) == doorStateUnlocked {
		return a.CloseDoor(ctx, deviceID, uid)
	}
	return a.OpenDoor(ctx, deviceID, uid)
}

func (a *webhookActuator) NotifyUnknownTag(ctx context.Context, deviceID, uid string) error {
	return a.notify(ctx, notification{Event: "unknown_uid", DeviceID: deviceID, UID: uid})
}

func (a *webhookActuator) NotifyClonedTag(ctx context.Context, deviceID, uid, keyName string) error {
	return a.notify(ctx, notification{Event: "cloned_uid", DeviceID: deviceID, UID: uid, KeyName: keyName})
}

func (a *webhookActuator) door(ctx context.Context, url, deviceID, uid string) error {
	if url == "" {
		return nil
	}

	resp, err := withTrace(ctx, a.client.R()).
		SetQueryParams(map[string]string{"device_id": deviceID, "uid": uid}).
		Get(url)
	if err != nil {
		return fmt.Errorf("door webhook: %w", err)
	}
	return mapHTTPError(resp)
}

func (a *webhookActuator) notify(ctx context.Context, n notification) error {
	if a.cfg.NotifyURL == "" {
		return nil
	}

	resp, err := withTrace(ctx, a.client.R()).
		SetHeader("Content-Type", "application/json").
		SetBody(n).
		Post(a.cfg.NotifyURL)
	if err != nil {
		return fmt.Errorf("notify webhook: %w", err)
	}
	return mapHTTPError(resp)
}
