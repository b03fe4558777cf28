package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-door-keeper/models"
)

const (
	ServiceName              = "doorkeeper.AccessControl"
	AuthenticateFullMethod   = "/" + ServiceName + "/Authenticate"
	authenticateMethodName   = "Authenticate"
	accessControlServiceFile = "doorkeeper/access_control.json"
)

// AccessControlServer is implemented by [Handler].
type AccessControlServer interface {
	Authenticate(ctx context.Context, req *models.AccessRequest) (*models.Response, error)
}

// AccessControlServiceDesc describes the service for [grpc.Server.RegisterService].
var AccessControlServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccessControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: authenticateMethodName,
			Handler:    authenticateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: accessControlServiceFile,
}

func authenticateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.AccessRequest)
	if err := dec(in); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "malformed request: %v", err)
	}
	if interceptor == nil {
		return srv.(AccessControlServer).Authenticate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthenticateFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AccessControlServer).Authenticate(ctx, req.(*models.AccessRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AccessControlClient calls the service over a client connection.
type AccessControlClient struct {
	conn grpc.ClientConnInterface
}

func NewAccessControlClient(conn grpc.ClientConnInterface) *AccessControlClient {
	return &AccessControlClient{conn: conn}
}

func (c *AccessControlClient) Authenticate(ctx context.Context, req *models.AccessRequest, opts ...grpc.CallOption) (*models.Response, error) {
	out := new(models.Response)
	opts = append([]grpc.CallOption{grpc.ForceCodec(JSONCodec{})}, opts...)
	if err := c.conn.Invoke(ctx, AuthenticateFullMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
