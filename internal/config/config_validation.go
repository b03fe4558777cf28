// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MasterSecret == "" {
		return fmt.Errorf("%w: master secret is required", ErrInvalidAppConfigs)
	}

	if cfg.TOTP.Period < 0 || cfg.TOTP.Window < 0 || cfg.TOTP.Digits < 0 || cfg.TOTP.Digits > 9 {
		return fmt.Errorf("%w: period=%d digits=%d window=%d",
			ErrInvalidTOTPConfigs, cfg.TOTP.Period, cfg.TOTP.Digits, cfg.TOTP.Window)
	}

	if cfg.Storage.DB.DSN == "" && (cfg.Storage.Files.TagDBPath == "" || cfg.Storage.Files.GAuthDBPath == "") {
		return fmt.Errorf("%w: either a database DSN or both tag and gauth files are required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}

	if cfg.Workers.Count < 0 || (cfg.Workers.Count > 0 && cfg.Workers.QueueSize <= 0) {
		return fmt.Errorf("%w: count=%d queue_size=%d", ErrInvalidWorkerConfigs, cfg.Workers.Count, cfg.Workers.QueueSize)
	}

	return nil
}
