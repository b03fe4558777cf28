// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// CodePrompt collects a secondary factor of the given length from the user.
type CodePrompt func(ctx context.Context, digits int) (string, error)
