// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
)

const AddressLen = 32

// Address is the 32-byte account identifier: the first 32 bytes of the
// SHA-256 digest of an account's public key.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// ToAddress copies the first [AddressLen] bytes of [b] into an Address.
func ToAddress(b []byte) Address {
	var a Address
	copy(a[:], b)
	return a
}

// String returns the canonical textual form: 64 lowercase hex characters.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	result := make([]byte, AddressLen*2)
	hex.Encode(result, a[:])
	return result, nil
}

// UnmarshalText parses a 64-character hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	decoded, err := hex.DecodeString(string(input))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidHexEncoding, err)
	}
	if len(decoded) != AddressLen {
		return fmt.Errorf("%w: %d != %d", ErrInvalidSize, len(decoded), AddressLen)
	}
	copy(a[:], decoded)
	return nil
}
