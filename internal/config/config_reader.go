package config

import (
	"fmt"
	"time"
)

// ReaderConfig configures the field-device simulator.
type ReaderConfig struct {
	// ServerURL is the base URL of the access-control server.
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`
	// DeviceID identifies the simulated reader.
	DeviceID string `env:"DEVICE_ID" envDefault:"reader-1"`
	// StatePath persists the simulated tag memory between runs.
	StatePath string `env:"STATE" envDefault:"reader-tag.json"`
	// RequestTimeout bounds each protocol request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
}

// GetReaderConfig reads the READER_ prefixed environment.
func GetReaderConfig() (*ReaderConfig, error) {
	cfg := &ReaderConfig{}
	if err := parseEnvWithPrefix(cfg, "READER_"); err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" || cfg.DeviceID == "" {
		return nil, fmt.Errorf("%w: server url and device id are required", ErrInvalidAppConfigs)
	}
	return cfg, nil
}
