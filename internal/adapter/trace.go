package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-door-keeper/internal/utils"
)

// TraceIDHeader carries the request trace id across services.
const TraceIDHeader = "X-Trace-ID"

func (h *httpAccessClient) request(ctx context.Context) *resty.Request {
	return withTrace(ctx, h.client.R())
}

func withTrace(ctx context.Context, req *resty.Request) *resty.Request {
	req.SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(TraceIDHeader, traceID)
	}
	return req
}
