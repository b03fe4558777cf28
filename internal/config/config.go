// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the access-control
// server. It is populated by merging environment variables, command-line
// flags, an optional JSON file and finally the built-in defaults.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	TOTP    TOTP    `envPrefix:"TOTP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// MasterSecret keys every anti-tamper and sector key derivation. It must
	// never change once tags have been provisioned.
	// Env: APP_MASTER_SECRET
	MasterSecret string `env:"MASTER_SECRET"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// TOTP holds the one-time password parameters.
type TOTP struct {
	Period int    `env:"PERIOD"`
	Digits int    `env:"DIGITS"`
	Window int    `env:"WINDOW"`
	Issuer string `env:"ISSUER"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the relational database settings. A postgres:// DSN selects
// PostgreSQL, a sqlite:// or file: DSN selects SQLite. When empty the JSON
// file backends from [Files] are used.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the paths of the JSON file backends.
type Files struct {
	// TagDBPath is the tag database, a JSON object keyed by UID.
	TagDBPath string `env:"TAG_DB"`
	// GAuthDBPath is the PIN database, a JSON object keyed by PIN.
	GAuthDBPath string `env:"GAUTH_DB"`
	// AuditLogPath is the JSON lines audit journal.
	AuditLogPath string `env:"AUDIT_LOG"`
}

// Server holds the inbound transport settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the door actuator and notification settings. Webhook URLs
// and the MQTT broker are independent; every configured target receives
// each call.
type Adapter struct {
	DoorOpenURL  string `env:"DOOR_OPEN_URL"`
	DoorCloseURL string `env:"DOOR_CLOSE_URL"`
	DoorStateURL string `env:"DOOR_STATE_URL"`
	NotifyURL    string `env:"NOTIFY_URL"`

	MQTTBroker   string `env:"MQTT_BROKER"`
	MQTTTopic    string `env:"MQTT_TOPIC"`
	MQTTClientID string `env:"MQTT_CLIENT_ID"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the asynchronous actuator queue settings. A zero Count
// makes actuator calls synchronous.
type Workers struct {
	QueueSize int `env:"QUEUE_SIZE"`
	Count     int `env:"COUNT"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// For every field the first non-zero value wins in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
