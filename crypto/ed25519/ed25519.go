// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ed25519 provides the classical half of hybrid transaction
// authentication. Messages are the 32-byte domain-separated signing digests,
// pre-hashed by the caller; signing rejects any other length with an error
// and verification with false.
package ed25519

import (
	"crypto/ed25519"

	"github.com/hdevalence/ed25519consensus"
)

type (
	PublicKey  [ed25519.PublicKeySize]byte
	PrivateKey [ed25519.PrivateKeySize]byte
	Signature  [ed25519.SignatureSize]byte
)

const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	// PrivateKeySeedLen is defined because ed25519.PrivateKey is formatted
	// as privateKey = seed|publicKey. We use this const to extract the
	// publicKey below.
	PrivateKeySeedLen = ed25519.SeedSize
	SignatureLen      = ed25519.SignatureSize

	// DigestLen is the only message length accepted: the classical
	// signature covers the same 32-byte signing digest the PQ signature
	// does.
	DigestLen = 32
)

var (
	EmptyPublicKey  = [ed25519.PublicKeySize]byte{}
	EmptyPrivateKey = [ed25519.PrivateKeySize]byte{}
	EmptySignature  = [ed25519.SignatureSize]byte{}
)

// GeneratePrivateKey returns an Ed25519 PrivateKey for hybrid signing.
func GeneratePrivateKey() (PrivateKey, error) {
	_, k, err := ed25519.GenerateKey(nil)
	if err != nil {
		return EmptyPrivateKey, err
	}
	return PrivateKey(k), nil
}

// PublicKey returns a PublicKey associated with the Ed25519 PrivateKey p.
// The PublicKey is the last 32 bytes of p.
func (p PrivateKey) PublicKey() PublicKey {
	return PublicKey(p[PrivateKeySeedLen:])
}

// Sign signs a 32-byte signing digest with pk. Any other digest length is
// rejected.
func Sign(digest []byte, pk PrivateKey) (Signature, error) {
	if len(digest) != DigestLen {
		return EmptySignature, ErrInvalidDigest
	}
	return Signature(ed25519.Sign(pk[:], digest)), nil
}

// Verify reports whether s is a valid signature of digest by p, under the
// ZIP-215 validity criteria (https://zips.z.cash/zip-0215): explicit,
// batch-friendly, and compatible with signatures from almost every ed25519
// implementation. A digest of the wrong length verifies to false; Verify
// never errors and never panics.
func Verify(digest []byte, p PublicKey, s Signature) bool {
	if len(digest) != DigestLen {
		return false
	}
	return ed25519consensus.Verify(p[:], digest, s[:])
}

// Batch accumulates (digest, key, signature) triples — in hybrid
// verification, the classical halves of many transactions — and verifies
// them in a single pass. A triple with a malformed digest poisons the whole
// batch: Verify reports false no matter what else was added.
type Batch struct {
	bv       ed25519consensus.BatchVerifier
	poisoned bool
}

func NewBatch(size int) *Batch {
	return &Batch{bv: ed25519consensus.NewPreallocatedBatchVerifier(size)}
}

func (b *Batch) Add(digest []byte, p PublicKey, s Signature) {
	if len(digest) != DigestLen {
		b.poisoned = true
		return
	}
	b.bv.Add(p[:], digest, s[:])
}

func (b *Batch) Verify() bool {
	return !b.poisoned && b.bv.Verify()
}
