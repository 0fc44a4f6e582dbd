// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mldsa provides keypair generation, signing, verification, and
// algorithm-parameter introspection for the ML-DSA lattice signature family
// and its historic Dilithium predecessors. Package mldsa uses
// cloudflare/circl for the underlying cryptography.
//
// Keys and signatures are raw byte runs; every exported size is queried from
// the backend scheme, never hardcoded. The Dilithium predecessors resolve to
// their own schemes with their own parameters (Dilithium3 signatures are
// 3293 bytes, ML-DSA-65 signatures 3309), so legacy material keeps its true
// shape.
package mldsa

import (
	"fmt"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"

	dilithium2 "github.com/cloudflare/circl/sign/dilithium/mode2"
	dilithium3 "github.com/cloudflare/circl/sign/dilithium/mode3"
	dilithium5 "github.com/cloudflare/circl/sign/dilithium/mode5"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto"
)

const (
	MLDSA44 = "ML-DSA-44"
	MLDSA65 = "ML-DSA-65"
	MLDSA87 = "ML-DSA-87"

	// Default is the algorithm pinned by wire version 1.
	Default = MLDSA65
)

type (
	PublicKey  []byte
	PrivateKey []byte
	Signature  []byte
)

// Wire-format checks for the default algorithm read these instead of
// re-resolving the scheme on every call. Populated once at load; read-only
// afterwards.
var (
	DefaultPublicKeyLen  int
	DefaultPrivateKeyLen int
	DefaultSignatureLen  int
)

func init() {
	s, err := Scheme(Default)
	if err != nil {
		panic(err)
	}
	DefaultPublicKeyLen = s.PublicKeySize()
	DefaultPrivateKeyLen = s.PrivateKeySize()
	DefaultSignatureLen = s.SignatureSize()
}

// Scheme resolves an algorithm name to its backend scheme. Only the
// hyphenated spellings of the historic names are normalized; each algorithm
// resolves to its own scheme, reporting its own parameters — the historic
// Dilithium predecessors are NOT folded into their ML-DSA successors.
func Scheme(algorithm string) (sign.Scheme, error) {
	switch algorithm {
	case MLDSA44, MLDSA65, MLDSA87:
		s := schemes.ByName(algorithm)
		if s == nil {
			return nil, fmt.Errorf("%w: algorithm %q unavailable", crypto.ErrSignatureVerificationFailed, algorithm)
		}
		return s, nil
	case "Dilithium2", "Dilithium-2":
		return dilithium2.Scheme(), nil
	case "Dilithium3", "Dilithium-3":
		return dilithium3.Scheme(), nil
	case "Dilithium5", "Dilithium-5":
		return dilithium5.Scheme(), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", crypto.ErrSignatureVerificationFailed, algorithm)
	}
}

// GenerateKeyPair returns a fresh keypair for [algorithm].
func GenerateKeyPair(algorithm string) (PublicKey, PrivateKey, error) {
	s, err := Scheme(algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", crypto.ErrKeyGenerationFailed, err)
	}
	pub, priv, err := s.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", crypto.ErrKeyGenerationFailed, err)
	}
	pubBytes, err := pub.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", crypto.ErrKeyGenerationFailed, err)
	}
	privBytes, err := priv.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", crypto.ErrKeyGenerationFailed, err)
	}
	return pubBytes, privBytes, nil
}

// Sign returns a signature over [msg] by [priv]. A private key whose length
// does not match the scheme's declared length is rejected; the error code
// predates the private/public split in the taxonomy and is kept for
// compatibility.
func Sign(msg []byte, priv PrivateKey, algorithm string) (Signature, error) {
	s, err := Scheme(algorithm)
	if err != nil {
		return nil, err
	}
	if len(priv) != s.PrivateKeySize() {
		return nil, fmt.Errorf("%w: private key size %d != %d",
			crypto.ErrInvalidPublicKey, len(priv), s.PrivateKeySize())
	}
	sk, err := s.UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", crypto.ErrInvalidPrivateKey, err)
	}
	return s.Sign(sk, msg, nil), nil
}

// Verify reports whether [sig] is a valid signature of [msg] by [pub].
// Size-mismatched keys or signatures verify to false; only backend faults
// (unknown or unavailable algorithm) return an error.
func Verify(msg []byte, sig Signature, pub PublicKey, algorithm string) (bool, error) {
	s, err := Scheme(algorithm)
	if err != nil {
		return false, err
	}
	if len(pub) != s.PublicKeySize() || len(sig) != s.SignatureSize() {
		return false, nil
	}
	pk, err := s.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return false, nil
	}
	return s.Verify(pk, msg, sig, nil), nil
}

// PublicKeyLen returns the public key length in bytes for [algorithm].
func PublicKeyLen(algorithm string) (int, error) {
	s, err := Scheme(algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", crypto.ErrInvalidPublicKey, err)
	}
	return s.PublicKeySize(), nil
}

// PrivateKeyLen returns the private key length in bytes for [algorithm].
func PrivateKeyLen(algorithm string) (int, error) {
	s, err := Scheme(algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", crypto.ErrInvalidPrivateKey, err)
	}
	return s.PrivateKeySize(), nil
}

// SignatureLen returns the signature length in bytes for [algorithm].
func SignatureLen(algorithm string) (int, error) {
	s, err := Scheme(algorithm)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", crypto.ErrInvalidSignature, err)
	}
	return s.SignatureSize(), nil
}
