package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/utils"
	"github.com/MKhiriev/go-door-keeper/models"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: " https://doors.example/ ", want: "https://doors.example"},
		{in: "", wantErr: ErrEmptyAddress},
		{in: "http://", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPAccessClient_Authenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth", r.URL.Path)
		assert.Equal(t, "trace-9", r.Header.Get(TraceIDHeader))

		var req models.AccessRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.AccessRequest{UID: "04AA", Cmd: models.CmdStage1, DeviceID: "front"}, req)

		_, _ = utils.WriteJSON(w, models.Response{Status: models.StatusRead, ReadBlock: 9, Key: "aabbccddeeff", Len: 16}, http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewHTTPAccessClient(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)

	ctx := utils.WithTraceID(context.Background(), "trace-9")
	resp, err := c.Authenticate(ctx, models.AccessRequest{UID: "04AA", Cmd: models.CmdStage1, DeviceID: "front"})
	require.NoError(t, err)
	assert.Equal(t, models.Response{Status: models.StatusRead, ReadBlock: 9, Key: "aabbccddeeff", Len: 16}, resp)
}

func TestHTTPAccessClient_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "malformed request body", http.StatusBadRequest)
	}))
	defer srv.Close()

	c, err := NewHTTPAccessClient(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)

	_, err = c.Authenticate(context.Background(), models.AccessRequest{})
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestHTTPAccessClient_Version(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		_, _ = utils.WriteJSON(w, models.VersionResponse{Version: "1.2.0", Date: "N/A", Commit: "abc"}, http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewHTTPAccessClient(srv.URL, time.Second, logger.Nop())
	require.NoError(t, err)

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", v.Version)
	assert.Equal(t, "abc", v.Commit)
}
