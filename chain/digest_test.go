// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/chain"
)

func TestSigningMessageConstruction(t *testing.T) {
	require := require.New(t)

	txBytes := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	chainID := uint32(7)

	preimage := []byte("TXv1")
	preimage = binary.BigEndian.AppendUint32(preimage, chainID)
	preimage = append(preimage, txBytes...)
	expected := sha256.Sum256(preimage)

	require.Equal(expected, chain.SigningMessage(chainID, txBytes))
}

func TestSigningMessageDomainSeparation(t *testing.T) {
	require := require.New(t)

	txBytes := []byte{0x42, 0x42, 0x42}
	require.NotEqual(
		chain.SigningMessage(1, txBytes),
		chain.SigningMessage(2, txBytes),
		"digests for different chains collided",
	)
	require.NotEqual(
		chain.SigningMessage(1, txBytes),
		chain.SigningMessage(1, []byte{0x42, 0x42, 0x43}),
		"digests for different payloads collided",
	)
}

func TestSigningMessageEmptyPayload(t *testing.T) {
	require := require.New(t)

	preimage := []byte{'T', 'X', 'v', '1', 0, 0, 0, 1}
	expected := sha256.Sum256(preimage)
	require.Equal(expected, chain.SigningMessage(1, nil))
}
