// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressString(t *testing.T) {
	require := require.New(t)

	var a Address
	a[0] = 0xAB
	a[31] = 0x01
	s := a.String()
	require.Len(s, 64)
	require.Equal(strings.ToLower(s), s)
	require.True(strings.HasPrefix(s, "ab"))
	require.True(strings.HasSuffix(s, "01"))
}

func TestAddressTextRoundTrip(t *testing.T) {
	require := require.New(t)

	var a Address
	for i := range a {
		a[i] = byte(i)
	}
	text, err := a.MarshalText()
	require.NoError(err)

	var b Address
	require.NoError(b.UnmarshalText(text))
	require.Equal(a, b)
}

func TestAddressUnmarshalInvalid(t *testing.T) {
	require := require.New(t)

	var a Address
	require.ErrorIs(a.UnmarshalText([]byte("zz")), ErrInvalidHexEncoding)
	require.ErrorIs(a.UnmarshalText([]byte("abcd")), ErrInvalidSize)
}
