package config

import "time"

// Defaults returns the built-in configuration.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		TOTP: TOTP{
			Period: 30,
			Digits: 6,
			Window: 2,
			Issuer: "DoorKeeper",
		},
		Storage: Storage{
			Files: Files{
				TagDBPath:    "rfid.json",
				GAuthDBPath:  "googleauth.json",
				AuditLogPath: "audit.log",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 5 * time.Second,
		},
		Adapter: Adapter{
			MQTTTopic:      "doorkeeper",
			MQTTClientID:   "door-keeper",
			RequestTimeout: time.Second,
		},
		Workers: Workers{QueueSize: 64},
	}
}
