// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	// ErrInvalidLengthPrefix is returned when a read runs past the end of
	// the buffer (the advertised structure is longer than the data).
	ErrInvalidLengthPrefix = errors.New("read past end of buffer")
	// ErrMismatchedLength is returned when a length prefix advertises more
	// bytes than remain in the buffer. The check happens before any bytes
	// are read.
	ErrMismatchedLength = errors.New("length prefix exceeds remaining buffer")
	ErrInvalidSize      = errors.New("invalid size")

	ErrInvalidHexEncoding    = errors.New("invalid hex encoding")
	ErrInvalidBase64Encoding = errors.New("invalid base64 encoding")
)
