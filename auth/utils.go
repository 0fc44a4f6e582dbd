// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/mldsa"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/utils"
)

// NewPQAddress derives the account identifier for a PQ public key.
func NewPQAddress(pubkey mldsa.PublicKey) codec.Address {
	return utils.ToAddress(pubkey)
}
