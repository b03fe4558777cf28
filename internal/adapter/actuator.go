package adapter

import (
	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
)

// NewActuator builds the configured actuator chain: the log sink, then the
// webhooks when any URL is set, then MQTT when a broker is set. The returned
// stop function releases the broker connection.
func NewActuator(cfg config.Adapter, log *logger.Logger) (DoorActuator, func(), error) {
	targets := []DoorActuator{NewLogActuator(log)}
	stop := func() {}

	if cfg.DoorOpenURL != "" || cfg.DoorCloseURL != "" || cfg.DoorStateURL != "" || cfg.NotifyURL != "" {
		targets = append(targets, NewWebhookActuator(cfg, log))
	}

	if cfg.MQTTBroker != "" {
		m, err := NewMQTTActuator(cfg, log)
		if err != nil {
			return nil, stop, err
		}
		targets = append(targets, m)
		stop = m.Stop
	}

	if len(targets) == 1 {
		return targets[0], stop, nil
	}
	return NewMultiActuator(targets...), stop, nil
}
