// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/consts"
)

func TestPackerRoundTrip(t *testing.T) {
	require := require.New(t)

	w := NewWriter(64, consts.NetworkSizeLimit)
	w.PackByte(0x01)
	w.PackUint(77)
	w.PackUint64(12345)
	w.PackShortBytes([]byte{0xAA, 0xBB, 0xCC})
	w.PackFixedBytes([]byte{0x01, 0x02})
	require.NoError(w.Err())

	r := NewReader(w.Bytes(), consts.NetworkSizeLimit)
	require.Equal(uint8(0x01), r.UnpackByte())
	require.Equal(uint32(77), r.UnpackUint())
	require.Equal(uint64(12345), r.UnpackUint64())
	var shortBytes []byte
	r.UnpackShortBytes(&shortBytes)
	require.Equal([]byte{0xAA, 0xBB, 0xCC}, shortBytes)
	var fixedBytes []byte
	r.UnpackFixedBytes(2, &fixedBytes)
	require.Equal([]byte{0x01, 0x02}, fixedBytes)
	require.NoError(r.Err())
	require.True(r.Empty())
}

func TestPackerBigEndian(t *testing.T) {
	require := require.New(t)

	w := NewWriter(16, consts.NetworkSizeLimit)
	w.PackUint(0x01020304)
	w.PackUint64(0x0102030405060708)
	require.NoError(w.Err())
	require.Equal(
		[]byte{
			0x01, 0x02, 0x03, 0x04,
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		},
		w.Bytes(),
	)
}

func TestPackerShortBytesPrefix(t *testing.T) {
	require := require.New(t)

	w := NewWriter(8, consts.NetworkSizeLimit)
	w.PackShortBytes([]byte{0x42})
	require.NoError(w.Err())
	require.Equal([]byte{0x00, 0x01, 0x42}, w.Bytes())

	// Empty runs carry a zero prefix and nothing else.
	w = NewWriter(8, consts.NetworkSizeLimit)
	w.PackShortBytes(nil)
	require.NoError(w.Err())
	require.Equal([]byte{0x00, 0x00}, w.Bytes())
}

func TestPackerMismatchedLength(t *testing.T) {
	require := require.New(t)

	// Advertises 300 bytes, carries 2.
	r := NewReader([]byte{0x01, 0x2C, 0xAA, 0xBB}, consts.NetworkSizeLimit)
	var b []byte
	r.UnpackShortBytes(&b)
	require.ErrorIs(r.Err(), ErrMismatchedLength)
	require.Empty(b)
}

func TestPackerReadPastEnd(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x01}, consts.NetworkSizeLimit)
	_ = r.UnpackUint64()
	require.ErrorIs(r.Err(), ErrInvalidLengthPrefix)

	// A truncated length prefix itself is also a read past end.
	r = NewReader([]byte{0x00}, consts.NetworkSizeLimit)
	var b []byte
	r.UnpackShortBytes(&b)
	require.ErrorIs(r.Err(), ErrInvalidLengthPrefix)
}

func TestPackerFirstErrorWins(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x01, 0x2C}, consts.NetworkSizeLimit)
	var b []byte
	r.UnpackShortBytes(&b)
	err := r.Err()
	require.ErrorIs(err, ErrMismatchedLength)

	// Later operations do not change the reported error.
	_ = r.UnpackUint64()
	require.Equal(err, r.Err())
}

func TestPackerRemaining(t *testing.T) {
	require := require.New(t)

	r := NewReader([]byte{0x01, 0x02, 0x03}, consts.NetworkSizeLimit)
	require.Equal(3, r.Remaining())
	require.False(r.Empty())
	_ = r.UnpackByte()
	require.Equal(2, r.Remaining())
	var b []byte
	r.UnpackFixedBytes(2, &b)
	require.True(r.Empty())
	require.NoError(r.Err())
}
