package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client bound to baseURL. A zero timeout
// leaves resty's default in place. Retries are disabled: actuator calls are
// fire-and-forget and a field device retries a protocol step on its own.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().SetRetryCount(0)
	if baseURL != "" {
		c.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
