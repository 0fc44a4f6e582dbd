// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"fmt"
	"os"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
)

// PrivateKey pairs raw key material with the address it controls.
type PrivateKey struct {
	Address codec.Address
	Bytes   []byte
}

// LoadKeyBytes reads a raw binary key file. If [expectedSize] is not -1,
// the file length must match it exactly.
func LoadKeyBytes(path string, expectedSize int) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileRead, err)
	}
	if expectedSize != -1 && len(b) != expectedSize {
		return nil, fmt.Errorf("%w: %d != %d", ErrInvalidKeySize, len(b), expectedSize)
	}
	return b, nil
}

// StoreKeyBytes writes raw key material with owner-only permissions.
func StoreKeyBytes(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("%w: %s", ErrFileWrite, err)
	}
	return nil
}

// KeyFileExists reports whether [path] already holds something.
func KeyFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
