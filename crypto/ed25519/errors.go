// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import "errors"

// ErrInvalidDigest is returned when a message passed for signing is not a
// 32-byte signing digest.
var ErrInvalidDigest = errors.New("invalid digest")
