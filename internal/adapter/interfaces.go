// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the door keeper.
//
// [DoorActuator] drives the lock and raises security notifications. It is
// implemented by an HTTP webhook client ([NewWebhookActuator]), an MQTT
// publisher ([NewMQTTActuator]), a log-only sink ([NewLogActuator]) and a
// fan-out combinator ([NewMultiActuator]); [NewActuator] assembles them from
// configuration.
//
// [AccessClient] is the field-device side of the access protocol and is
// used by the reader simulator.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-door-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DoorActuator performs physical door actions and sends alerts. Callers
// treat every method as fire-and-forget: an error is logged, never turned
// into an access decision.
type DoorActuator interface {
	OpenDoor(ctx context.Context, deviceID, uid string) error
	CloseDoor(ctx context.Context, deviceID, uid string) error
	// ToggleDoor opens a locked door and locks an open one.
	ToggleDoor(ctx context.Context, deviceID, uid string) error

	NotifyUnknownTag(ctx context.Context, deviceID, uid string) error
	NotifyClonedTag(ctx context.Context, deviceID, uid, keyName string) error
}

// AccessClient submits access requests to a door keeper server.
type AccessClient interface {
	Authenticate(ctx context.Context, req models.AccessRequest) (models.Response, error)
	Version(ctx context.Context) (models.VersionResponse, error)
}
