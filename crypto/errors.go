// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "errors"

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidSignature  = errors.New("invalid signature")

	// ErrSignatureVerificationFailed reports a backend fault (unknown
	// algorithm, backend unavailable), never a normal "signature does not
	// verify" outcome. Verification outcomes are booleans.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")
	ErrKeyGenerationFailed         = errors.New("key generation failed")
	ErrHashFailed                  = errors.New("hash failed")
)
