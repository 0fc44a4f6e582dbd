// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/chain"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/consts"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/ed25519"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/mldsa"
)

var _ chain.Auth = (*Hybrid)(nil)

// Hybrid authenticates a transaction with both an Ed25519 and an ML-DSA
// signature over the same digest; both must verify. The classical public
// key rides in the payload (the transaction's from_pubkey is sized for the
// PQ algorithm and cannot serve the classical verifier). The classical key
// is not covered by the signing digest, which covers no auth material;
// ledgers wanting classical-strength sender binding must pin the classical
// key to the account out of band.
type Hybrid struct {
	ClassicalSigner    ed25519.PublicKey `json:"classicalSigner"`
	ClassicalSignature ed25519.Signature `json:"classicalSignature"`
	Signature          codec.Bytes       `json:"signature"`
}

func (*Hybrid) GetTypeID() uint8 {
	return HybridID
}

func (d *Hybrid) Size() int {
	return consts.Uint16Len + ed25519.PublicKeyLen +
		consts.Uint16Len + ed25519.SignatureLen +
		consts.Uint16Len + len(d.Signature)
}

func (d *Hybrid) Marshal(p *codec.Packer) {
	p.PackShortBytes(d.ClassicalSigner[:])
	p.PackShortBytes(d.ClassicalSignature[:])
	p.PackShortBytes(d.Signature)
}

func UnmarshalHybrid(p *codec.Packer) (chain.Auth, error) {
	var d Hybrid

	var signer []byte
	p.UnpackShortBytes(&signer)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if len(signer) != ed25519.PublicKeyLen {
		return nil, fmt.Errorf("%w: classical public key size %d != %d",
			crypto.ErrInvalidPublicKey, len(signer), ed25519.PublicKeyLen)
	}
	copy(d.ClassicalSigner[:], signer)

	var classicalSig []byte
	p.UnpackShortBytes(&classicalSig)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if len(classicalSig) != ed25519.SignatureLen {
		return nil, fmt.Errorf("%w: classical signature size %d != %d",
			crypto.ErrInvalidSignature, len(classicalSig), ed25519.SignatureLen)
	}
	copy(d.ClassicalSignature[:], classicalSig)

	var sig []byte
	p.UnpackShortBytes(&sig)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if len(sig) != mldsa.DefaultSignatureLen {
		return nil, fmt.Errorf("%w: pq signature size %d != %d",
			crypto.ErrInvalidSignature, len(sig), mldsa.DefaultSignatureLen)
	}
	d.Signature = sig

	return &d, nil
}

func (d *Hybrid) Signed() bool {
	return len(d.Signature) > 0
}

func (d *Hybrid) Validate() error {
	if len(d.Signature) != mldsa.DefaultSignatureLen {
		return fmt.Errorf("%w: pq signature size %d != %d",
			crypto.ErrInvalidSignature, len(d.Signature), mldsa.DefaultSignatureLen)
	}
	return nil
}

// Verify checks the cheap classical signature first and short-circuits; the
// expensive PQ verification runs only after the classical one holds. This
// ordering is observable and part of the contract.
func (d *Hybrid) Verify(msg []byte, signer []byte) (bool, error) {
	if !ed25519.Verify(msg, d.ClassicalSigner, d.ClassicalSignature) {
		return false, nil
	}
	return mldsa.Verify(msg, mldsa.Signature(d.Signature), signer, mldsa.Default)
}

var _ chain.AuthFactory = (*HybridFactory)(nil)

// HybridFactory signs digests with an ML-DSA key and an Ed25519 key. Both
// signatures must succeed or no auth is produced.
type HybridFactory struct {
	priv          mldsa.PrivateKey
	classicalPriv ed25519.PrivateKey
	algorithm     string
}

func NewHybridFactory(priv mldsa.PrivateKey, classicalPriv ed25519.PrivateKey) *HybridFactory {
	return &HybridFactory{priv: priv, classicalPriv: classicalPriv, algorithm: mldsa.Default}
}

func (d *HybridFactory) Sign(msg []byte) (chain.Auth, error) {
	sig, err := mldsa.Sign(msg, d.priv, d.algorithm)
	if err != nil {
		return nil, err
	}
	classicalSig, err := ed25519.Sign(msg, d.classicalPriv)
	if err != nil {
		return nil, err
	}
	return &Hybrid{
		ClassicalSigner:    d.classicalPriv.PublicKey(),
		ClassicalSignature: classicalSig,
		Signature:          codec.Bytes(sig),
	}, nil
}
