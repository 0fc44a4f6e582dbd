// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidArgs    = errors.New("invalid args")
	ErrInvalidFormat  = errors.New("invalid format")
	ErrInvalidAddress = errors.New("invalid address")
	ErrAborted        = errors.New("aborted")
)
