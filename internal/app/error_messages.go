// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages sent to field devices in the
// "message" field of an err response. Deployed reader firmware displays them
// verbatim, so the wording must not change.
package app

const (
	// MsgNotAllowedOnDevice is sent when a populated tag is presented on a
	// reader outside its device allow-list.
	MsgNotAllowedOnDevice = "You're not allowed on this device!"

	// MsgAlreadyPopulated is sent when initialization is attempted on a tag
	// that already carries keys.
	MsgAlreadyPopulated = "uid already populated (:"

	// MsgKeyNameNotDefined is sent when an unpopulated record has no owner
	// name to derive keys from.
	MsgKeyNameNotDefined = "key_name not defined!"
)
