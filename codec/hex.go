// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex returns the lowercase hex encoding of b.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// LoadHex converts a hex-encoded string into bytes. A leading "0x" and any
// whitespace are ignored. If [expectedSize] is not -1, the decoded length
// must match it.
func LoadHex(s string, expectedSize int) ([]byte, error) {
	s = stripWhitespace(s)
	if len(s) >= 2 && s[:2] == "0x" {
		s = s[2:]
	}

	bytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHexEncoding, err)
	}
	if expectedSize != -1 && len(bytes) != expectedSize {
		return nil, ErrInvalidSize
	}
	return bytes, nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

type Bytes []byte

func (b Bytes) String() string {
	return ToHex(b)
}

// MarshalText returns the hex representation of b.
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText sets b to the bytes represented by text.
func (b *Bytes) UnmarshalText(text []byte) error {
	bytes, err := LoadHex(string(text), -1)
	if err != nil {
		return err
	}
	*b = bytes
	return nil
}
