package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-door-keeper/internal/config"
	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/totp"
	"github.com/MKhiriev/go-door-keeper/models"
	"rsc.io/qr"
)

// defaultAccount labels provisioning URIs requested without an account.
const defaultAccount = "door"

type enrollmentService struct {
	otp    *totp.Engine
	issuer string

	logger *logger.Logger
}

// NewEnrollmentService returns the helper used to hand out TOTP seeds to new
// users.
func NewEnrollmentService(otp *totp.Engine, cfg config.TOTP, logger *logger.Logger) EnrollmentService {
	return &enrollmentService{
		otp:    otp,
		issuer: cfg.Issuer,
		logger: logger,
	}
}

func (s *enrollmentService) NewSecret(ctx context.Context, account string) (models.EnrollmentSecret, error) {
	secret, err := s.otp.NewSecret()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*enrollmentService.NewSecret").Msg("error generating secret")
		return models.EnrollmentSecret{}, fmt.Errorf("generate secret: %w", err)
	}

	return models.EnrollmentSecret{
		Secret: secret,
		URI:    totp.URI(s.issuer, accountOrDefault(account), secret),
	}, nil
}

// QRCode renders the provisioning URI of secret as a PNG image.
func (s *enrollmentService) QRCode(ctx context.Context, secret, account string) ([]byte, error) {
	if _, err := totp.DecodeBase32(secret); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	code, err := qr.Encode(totp.URI(s.issuer, accountOrDefault(account), secret), qr.M)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*enrollmentService.QRCode").Msg("error encoding qr code")
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return code.PNG(), nil
}

func accountOrDefault(account string) string {
	if account == "" {
		return defaultAccount
	}
	return account
}
