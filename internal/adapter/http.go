package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/utils"
	"github.com/MKhiriev/go-door-keeper/models"
)

type httpAccessClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAccessClient returns an [AccessClient] talking to the server at
// address. A scheme-less address is treated as http.
func NewHTTPAccessClient(address string, timeout time.Duration, logger *logger.Logger) (AccessClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpAccessClient{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate posts req to /auth. Protocol refusals come back as a
// response with status "err" and a nil error.
func (h *httpAccessClient) Authenticate(ctx context.Context, req models.AccessRequest) (models.Response, error) {
	var out models.Response

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/auth")
	if err != nil {
		return models.Response{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return out, nil
}

func (h *httpAccessClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse

	resp, err := h.request(ctx).SetResult(&out).Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return out, nil
}
