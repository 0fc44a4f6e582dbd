// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyFileRoundTrip(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "pq.key")
	key := []byte{1, 2, 3, 4}

	require.False(KeyFileExists(path))
	require.NoError(StoreKeyBytes(path, key))
	require.True(KeyFileExists(path))

	loaded, err := LoadKeyBytes(path, 4)
	require.NoError(err)
	require.Equal(key, loaded)

	loaded, err = LoadKeyBytes(path, -1)
	require.NoError(err)
	require.Equal(key, loaded)
}

func TestLoadKeyBytesWrongSize(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "pq.key")
	require.NoError(StoreKeyBytes(path, []byte{1, 2, 3}))

	_, err := LoadKeyBytes(path, 4)
	require.ErrorIs(err, ErrInvalidKeySize)
}

func TestLoadKeyBytesMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := LoadKeyBytes(filepath.Join(t.TempDir(), "nope"), -1)
	require.ErrorIs(err, ErrFileRead)
}
