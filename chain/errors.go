// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	// Decode errors.
	ErrInvalidVersion = errors.New("invalid version")
	ErrTrailingBytes  = errors.New("trailing bytes after transaction")
	ErrInvalidAuthTag = errors.New("invalid auth tag")

	// ErrDuplicateAuthType is returned when two auth variants declare the
	// same wire tag.
	ErrDuplicateAuthType = errors.New("duplicate auth type")

	// Policy errors, raised by the cheap-check gate.
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidChainID     = errors.New("invalid chain id")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidFee         = errors.New("invalid fee")

	ErrUnknown = errors.New("unknown error")
)
