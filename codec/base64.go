// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/base64"
	"fmt"
)

// ToBase64 returns the standard (RFC 4648, padded) base64 encoding of b.
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// LoadBase64 converts a standard base64 string into bytes. Whitespace is
// ignored.
func LoadBase64(s string) ([]byte, error) {
	bytes, err := base64.StdEncoding.DecodeString(stripWhitespace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBase64Encoding, err)
	}
	return bytes, nil
}
