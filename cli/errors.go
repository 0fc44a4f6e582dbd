// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import "errors"

var (
	ErrFileRead  = errors.New("could not read file")
	ErrFileWrite = errors.New("could not write file")

	ErrInvalidKeySize = errors.New("invalid key size")
)
