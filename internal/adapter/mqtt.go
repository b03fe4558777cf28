package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
)

const (
	mqttQoS            = 1
	mqttConnectTimeout = 5 * time.Second
)

// publisher is the part of mqtt.Client the actuator uses.
type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// mqttMessage is published for door commands and alerts alike.
type mqttMessage struct {
	Action   string    `json:"action"`
	DeviceID string    `json:"device_id"`
	UID      string    `json:"uid"`
	KeyName  string    `json:"key_name,omitempty"`
	SentAt   time.Time `json:"sent_at"`
}

// MQTTActuator publishes door commands to <topic>/<device_id>/door and alerts
// to <topic>/alerts. The lock controller subscribed to the door topic owns
// the lock state, so a toggle is forwarded as is.
type MQTTActuator struct {
	client  publisher
	topic   string
	timeout time.Duration
	logger  *logger.Logger
	now     func() time.Time

	disconnect func()
}

// NewMQTTActuator connects to cfg.MQTTBroker.
func NewMQTTActuator(cfg config.Adapter, logger *logger.Logger) (*MQTTActuator, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(cfg.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(mqttConnectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn().Err(err).Str("broker", cfg.MQTTBroker).Msg("mqtt connection lost")
		})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("%w: %s: timeout", ErrMQTTConnect, cfg.MQTTBroker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMQTTConnect, err)
	}
	logger.Info().Str("broker", cfg.MQTTBroker).Str("topic", cfg.MQTTTopic).Msg("connected to mqtt broker")

	a := newMQTTActuator(client, cfg.MQTTTopic, cfg.RequestTimeout, logger)
	a.disconnect = func() { client.Disconnect(250) }
	return a, nil
}

func newMQTTActuator(client publisher, topic string, timeout time.Duration, logger *logger.Logger) *MQTTActuator {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &MQTTActuator{
		client:  client,
		topic:   topic,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

func (a *MQTTActuator) OpenDoor(ctx context.Context, deviceID, uid string) error {
	return a.publish(ctx, a.doorTopic(deviceID), mqttMessage{Action: "open", DeviceID: deviceID, UID: uid})
}

func (a *MQTTActuator) CloseDoor(ctx context.Context, deviceID, uid string) error {
	return a.publish(ctx, a.doorTopic(deviceID), mqttMessage{Action: "close", DeviceID: deviceID, UID: uid})
}

func (a *MQTTActuator) ToggleDoor(ctx context.Context, deviceID, uid string) error {
	return a.publish(ctx, a.doorTopic(deviceID), mqttMessage{Action: "toggle", DeviceID: deviceID, UID: uid})
}

func (a *MQTTActuator) NotifyUnknownTag(ctx context.Context, deviceID, uid string) error {
	return a.publish(ctx, a.topic+"/alerts", mqttMessage{Action: "unknown_uid", DeviceID: deviceID, UID: uid})
}

func (a *MQTTActuator) NotifyClonedTag(ctx context.Context, deviceID, uid, keyName string) error {
	return a.publish(ctx, a.topic+"/alerts", mqttMessage{Action: "cloned_uid", DeviceID: deviceID, UID: uid, KeyName: keyName})
}

// Stop disconnects from the broker.
func (a *MQTTActuator) Stop() {
	if a.disconnect != nil {
		a.disconnect()
	}
}

func (a *MQTTActuator) doorTopic(deviceID string) string {
	return a.topic + "/" + deviceID + "/door"
}

func (a *MQTTActuator) publish(ctx context.Context, topic string, msg mqttMessage) error {
	msg.SentAt = a.now().UTC()
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMQTTPublish, err)
	}

	token := a.client.Publish(topic, mqttQoS, false, payload)

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
	case <-timer.C:
		return fmt.Errorf("%w: %s", ErrMQTTTimeout, topic)
	case <-ctx.Done():
		return ctx.Err()
	}

	if err = token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrMQTTPublish, err)
	}
	return nil
}
