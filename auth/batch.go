// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/ed25519"
)

// HybridBatch verifies the classical halves of many hybrid payloads in one
// pass. The PQ halves still verify individually; a batch only short-circuits
// the cheap side of hybrid verification, so a true result here is not
// authentication by itself.
type HybridBatch struct {
	batch *ed25519.Batch
}

func NewHybridBatch(size int) *HybridBatch {
	return &HybridBatch{batch: ed25519.NewBatch(size)}
}

// Add enqueues the classical signature of [d] over [digest].
func (b *HybridBatch) Add(digest []byte, d *Hybrid) {
	b.batch.Add(digest, d.ClassicalSigner, d.ClassicalSignature)
}

// Verify reports whether every enqueued classical signature holds.
func (b *HybridBatch) Verify() bool {
	return b.batch.Verify()
}
