package service

import (
	"context"

	"github.com/MKhiriev/go-door-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccessService runs the field-device protocol. Every method answers with a
// [models.Response]; refusals are responses with status err, never errors.
type AccessService interface {
	// Authenticate validates a wire request and dispatches it to the
	// handler of its command.
	Authenticate(ctx context.Context, req models.AccessRequest) models.Response
	// Handle dispatches an already validated command.
	Handle(ctx context.Context, cmd models.AccessCommand) models.Response

	Stage1(ctx context.Context, req models.Stage1Request) models.Response
	Stage2(ctx context.Context, req models.Stage2Request) models.Response
	Stage3(ctx context.Context, req models.Stage3Request) models.Response
	Stage4(ctx context.Context, req models.Stage4Request) models.Response
	KeyAuth(ctx context.Context, req models.KeyAuthRequest) models.Response
	ChinaUID(ctx context.Context, req models.ChinaUIDRequest) models.Response
}

// EnrollmentService provisions TOTP secrets for authenticator apps.
type EnrollmentService interface {
	NewSecret(ctx context.Context, account string) (models.EnrollmentSecret, error)
	// QRCode renders the otpauth URI of secret as a PNG image.
	QRCode(ctx context.Context, secret, account string) ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
