package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		MasterSecret string `json:"master_secret"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	TOTP struct {
		Period int    `json:"period"`
		Digits int    `json:"digits"`
		Window int    `json:"window"`
		Issuer string `json:"issuer"`
	} `json:"totp,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			TagDB    string `json:"tag_db"`
			GAuthDB  string `json:"gauth_db"`
			AuditLog string `json:"audit_log"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		DoorOpenURL    string   `json:"door_open_url"`
		DoorCloseURL   string   `json:"door_close_url"`
		DoorStateURL   string   `json:"door_state_url"`
		NotifyURL      string   `json:"notify_url"`
		MQTTBroker     string   `json:"mqtt_broker"`
		MQTTTopic      string   `json:"mqtt_topic"`
		MQTTClientID   string   `json:"mqtt_client_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		QueueSize int `json:"queue_size"`
		Count     int `json:"count"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			MasterSecret: j.App.MasterSecret,
			Version:      j.App.Version,
		},
		TOTP: TOTP{
			Period: j.TOTP.Period,
			Digits: j.TOTP.Digits,
			Window: j.TOTP.Window,
			Issuer: j.TOTP.Issuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Files: Files{
				TagDBPath:    j.Storage.Files.TagDB,
				GAuthDBPath:  j.Storage.Files.GAuthDB,
				AuditLogPath: j.Storage.Files.AuditLog,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			DoorOpenURL:    j.Adapter.DoorOpenURL,
			DoorCloseURL:   j.Adapter.DoorCloseURL,
			DoorStateURL:   j.Adapter.DoorStateURL,
			NotifyURL:      j.Adapter.NotifyURL,
			MQTTBroker:     j.Adapter.MQTTBroker,
			MQTTTopic:      j.Adapter.MQTTTopic,
			MQTTClientID:   j.Adapter.MQTTClientID,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{
			QueueSize: j.Workers.QueueSize,
			Count:     j.Workers.Count,
		},
	}

	return cfg, nil
}

// Duration wraps time.Duration so JSON accepts both "30s" strings and
// nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
