// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements a field-device simulator. It drives the tag
// protocol against an access-control server the way a reader does and keeps
// the tag memory in a JSON file, which makes it usable for commissioning and
// smoke tests without NFC hardware.
package client
