// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/consts"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/mldsa"
)

// SyntacticVerify is the cheap-check gate: every O(1) structural and policy
// check that must hold before any signature is verified. It duplicates the
// size checks the decoder already applied; the duplication is deliberate so
// the gate also protects transactions built in memory.
//
// The non-zero nonce/amount/fee rules are ledger policy, not codec
// invariants, which is why they live here and not in the decoder.
func (t *Transaction) SyntacticVerify(expectedChainID uint32) error {
	switch {
	case t.Version != consts.WireVersion:
		return fmt.Errorf("%w: %d", ErrInvalidVersion, t.Version)
	case t.ChainID != expectedChainID:
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidChainID, expectedChainID, t.ChainID)
	case t.Nonce == 0:
		return fmt.Errorf("%w: nonce cannot be zero", ErrInvalidTransaction)
	case t.Amount == 0:
		return fmt.Errorf("%w: amount cannot be zero", ErrInvalidAmount)
	case t.Fee == 0:
		return fmt.Errorf("%w: fee cannot be zero", ErrInvalidFee)
	}
	if len(t.FromPublicKey) != mldsa.DefaultPublicKeyLen {
		return fmt.Errorf("%w: public key size %d != %d",
			crypto.ErrInvalidPublicKey, len(t.FromPublicKey), mldsa.DefaultPublicKeyLen)
	}
	if t.Auth == nil {
		return fmt.Errorf("%w: missing auth", ErrInvalidTransaction)
	}
	if !t.Auth.Signed() {
		return fmt.Errorf("%w: unsigned", ErrInvalidTransaction)
	}
	return t.Auth.Validate()
}

// Validate runs the full inbound pipeline in DoS-aware order: the O(1) gate
// first, signature verification only if it passes. Gate failures map to
// (false, nil) — they are invalid transactions, not faults.
func (t *Transaction) Validate(chainID uint32) (bool, error) {
	if err := t.SyntacticVerify(chainID); err != nil {
		return false, nil
	}
	return t.Verify(chainID)
}
