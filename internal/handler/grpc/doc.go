// Package grpc exposes the field-device protocol as the unary method
// doorkeeper.AccessControl/Authenticate.
//
// Messages are the same JSON documents the HTTP transport exchanges, carried
// with a JSON codec instead of protobuf so that both transports share
// [models.AccessRequest] and [models.Response].
package grpc
