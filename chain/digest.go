// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/utils/hashing"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/consts"
)

// SigningDomain is the domain-separation label for v1 transaction
// signatures. Changing it, or the chain id that follows it, yields a
// non-colliding message.
const SigningDomain = "TXv1"

// SigningMessage maps a chain id and a signing-only transaction encoding to
// the 32-byte digest that is signed:
//
//	SHA-256("TXv1" || chain_id_BE_4 || txBytes)
//
// The order — label, chain id, payload — is fixed. [txBytes] must be the
// output of Transaction.UnsignedBytes, which excludes all auth material so
// that a signature never covers itself.
func SigningMessage(chainID uint32, txBytes []byte) [hashing.HashLen]byte {
	msg := make([]byte, 0, len(SigningDomain)+consts.Uint32Len+len(txBytes))
	msg = append(msg, SigningDomain...)
	msg = binary.BigEndian.AppendUint32(msg, chainID)
	msg = append(msg, txBytes...)
	return hashing.ComputeHash256Array(msg)
}
