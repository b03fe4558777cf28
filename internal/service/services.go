package service

import (
	"github.com/MKhiriev/go-door-keeper/internal/adapter"
	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/crypto"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/store"
	"github.com/MKhiriev/go-door-keeper/internal/totp"
	"github.com/MKhiriev/go-door-keeper/models"
)

type Services struct {
	Access     AccessService
	Enrollment EnrollmentService
	AppInfo    AppInfoService
}

func NewServices(
	storages *store.Storages,
	door adapter.DoorActuator,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	otp := totp.NewEngine(cfg.TOTP.Period, cfg.TOTP.Digits, cfg.TOTP.Window)
	codes := crypto.NewCodeGenerator(cfg.App.MasterSecret)

	return &Services{
		Access:     NewAccessService(storages, door, codes, crypto.NewSystemRandom(), otp, logger),
		Enrollment: NewEnrollmentService(otp, cfg.TOTP, logger),
		AppInfo:    appInfo,
	}, nil
}
