// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/chain"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/consts"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/mldsa"
)

var _ chain.Auth = (*PQ)(nil)

// PQ authenticates a transaction with a single ML-DSA signature over the
// signing digest. An empty signature is the unsigned placeholder: it
// encodes and decodes, but never verifies and never passes the cheap-check
// gate.
type PQ struct {
	Signature codec.Bytes `json:"signature,omitempty"`
}

func (*PQ) GetTypeID() uint8 {
	return PQID
}

func (d *PQ) Size() int {
	return consts.Uint16Len + len(d.Signature)
}

func (d *PQ) Marshal(p *codec.Packer) {
	p.PackShortBytes(d.Signature)
}

func UnmarshalPQ(p *codec.Packer) (chain.Auth, error) {
	var d PQ
	var sig []byte
	p.UnpackShortBytes(&sig)
	if err := p.Err(); err != nil {
		return nil, err
	}
	// Length zero denotes an unsigned transaction; any other length must
	// match the algorithm exactly.
	if len(sig) != 0 && len(sig) != mldsa.DefaultSignatureLen {
		return nil, fmt.Errorf("%w: pq signature size %d != %d",
			crypto.ErrInvalidSignature, len(sig), mldsa.DefaultSignatureLen)
	}
	d.Signature = sig
	return &d, nil
}

func (d *PQ) Signed() bool {
	return len(d.Signature) > 0
}

func (d *PQ) Validate() error {
	if len(d.Signature) != mldsa.DefaultSignatureLen {
		return fmt.Errorf("%w: pq signature size %d != %d",
			crypto.ErrInvalidSignature, len(d.Signature), mldsa.DefaultSignatureLen)
	}
	return nil
}

func (d *PQ) Verify(msg []byte, signer []byte) (bool, error) {
	return mldsa.Verify(msg, mldsa.Signature(d.Signature), signer, mldsa.Default)
}

var _ chain.AuthFactory = (*PQFactory)(nil)

// PQFactory signs digests with one ML-DSA private key.
type PQFactory struct {
	priv      mldsa.PrivateKey
	algorithm string
}

func NewPQFactory(priv mldsa.PrivateKey) *PQFactory {
	return &PQFactory{priv: priv, algorithm: mldsa.Default}
}

// NewPQFactoryWithAlgorithm signs under a non-default algorithm; the result
// is only wire-valid when the algorithm's sizes match the default's.
func NewPQFactoryWithAlgorithm(priv mldsa.PrivateKey, algorithm string) *PQFactory {
	return &PQFactory{priv: priv, algorithm: algorithm}
}

func (d *PQFactory) Sign(msg []byte) (chain.Auth, error) {
	sig, err := mldsa.Sign(msg, d.priv, d.algorithm)
	if err != nil {
		return nil, err
	}
	return &PQ{Signature: codec.Bytes(sig)}, nil
}
