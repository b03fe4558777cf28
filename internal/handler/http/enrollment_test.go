package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-door-keeper/internal/service"
	"github.com/MKhiriev/go-door-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewSecret(t *testing.T) {
	h, m := newTestHandler(t)
	m.enrollment.EXPECT().NewSecret(gomock.Any(), "alice").Return(models.EnrollmentSecret{
		Secret: "JBSWY3DPEHPK3PXP",
		URI:    "otpauth://totp/DoorKeeper:alice?issuer=DoorKeeper&secret=JBSWY3DPEHPK3PXP",
	}, nil)

	rec := httptest.NewRecorder()
	h.newSecret(rec, httptest.NewRequest(http.MethodGet, "/qr?account=alice", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"secret":"JBSWY3DPEHPK3PXP","uri":"otpauth://totp/DoorKeeper:alice?issuer=DoorKeeper&secret=JBSWY3DPEHPK3PXP"}`,
		rec.Body.String())
}

func TestNewSecret_Failure(t *testing.T) {
	h, m := newTestHandler(t)
	m.enrollment.EXPECT().NewSecret(gomock.Any(), "").Return(models.EnrollmentSecret{}, errors.New("entropy"))

	rec := httptest.NewRecorder()
	h.newSecret(rec, httptest.NewRequest(http.MethodGet, "/qr", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestQRCode(t *testing.T) {
	tests := []struct {
		name       string
		png        []byte
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "rendered",
			png:        []byte("\x89PNG"),
			wantStatus: http.StatusOK,
			wantType:   "image/png",
		},
		{
			name:       "invalid secret",
			err:        fmt.Errorf("%w: bad base32", service.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "encoder failure",
			err:        errors.New("too long"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.enrollment.EXPECT().QRCode(gomock.Any(), "JBSWY3DPEHPK3PXP", "bob").Return(tt.png, tt.err)

			rec := httptest.NewRecorder()
			h.qrCode(rec, httptest.NewRequest(http.MethodGet, "/qr.png?secret=JBSWY3DPEHPK3PXP&account=bob", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
				assert.Equal(t, tt.png, rec.Body.Bytes())
			}
		})
	}
}
