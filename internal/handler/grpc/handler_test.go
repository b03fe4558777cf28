package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/mock"
	"github.com/MKhiriev/go-door-keeper/internal/service"
	"github.com/MKhiriev/go-door-keeper/internal/utils"
	"github.com/MKhiriev/go-door-keeper/models"
)

const bufSize = 1024 * 1024

// startBufServer serves h over an in-memory listener and returns a client.
func startBufServer(t *testing.T, h *Handler) *AccessControlClient {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer(h.ServerOptions()...)
	h.Register(srv)

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewAccessControlClient(conn)
}

func newTestHandler(t *testing.T) (*Handler, *mock.MockAccessService) {
	t.Helper()
	access := mock.NewMockAccessService(gomock.NewController(t))
	return NewHandler(&service.Services{Access: access}, logger.Nop()), access
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	h, access := newTestHandler(t)

	req := models.AccessRequest{UID: "04A1B2C3", Cmd: models.CmdStage1, DeviceID: "door-1"}
	access.EXPECT().Authenticate(gomock.Any(), req).Return(models.Response{
		Status:    models.StatusRead,
		ReadBlock: 21,
		Key:       "aaaaaaaaaaaa",
		Len:       16,
	})

	client := startBufServer(t, h)

	resp, err := client.Authenticate(context.Background(), &req)
	require.NoError(t, err)
	assert.Equal(t, &models.Response{Status: models.StatusRead, ReadBlock: 21, Key: "aaaaaaaaaaaa", Len: 16}, resp)
}

func TestAuthenticate_RefusalIsNotAnError(t *testing.T) {
	h, access := newTestHandler(t)
	access.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.ErrResponse(""))

	client := startBufServer(t, h)

	resp, err := client.Authenticate(context.Background(), &models.AccessRequest{Cmd: models.CmdStage1})
	require.NoError(t, err)
	assert.Equal(t, models.StatusErr, resp.Status)
}

func TestAuthenticate_PropagatesTraceID(t *testing.T) {
	h, access := newTestHandler(t)

	var seen string
	access.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.AccessRequest) models.Response {
			seen, _ = utils.GetTraceIDFromContext(ctx)
			return models.Response{Status: models.StatusDone}
		})

	client := startBufServer(t, h)

	ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, "trace-42")
	var header metadata.MD
	_, err := client.Authenticate(ctx, &models.AccessRequest{Cmd: models.CmdStage1}, grpc.Header(&header))
	require.NoError(t, err)

	assert.Equal(t, "trace-42", seen)
	assert.Equal(t, []string{"trace-42"}, header.Get(traceIDKey))
}

func TestAuthenticate_PanicBecomesInternal(t *testing.T) {
	h, access := newTestHandler(t)
	access.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.AccessRequest) models.Response {
			panic("boom")
		})

	client := startBufServer(t, h)

	_, err := client.Authenticate(context.Background(), &models.AccessRequest{Cmd: models.CmdStage1})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestJSONCodec(t *testing.T) {
	c := JSONCodec{}
	assert.Equal(t, "json", c.Name())

	b, err := c.Marshal(&models.AccessRequest{Cmd: models.CmdKeyAuth, DeviceID: "door-1", Key: "1234567890"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cmd":"keyauth","device_id":"door-1","key":"1234567890"}`, string(b))

	var got models.AccessRequest
	require.NoError(t, c.Unmarshal(b, &got))
	assert.Equal(t, models.CmdKeyAuth, got.Cmd)

	assert.Error(t, c.Unmarshal([]byte("{"), &got))
}
