// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/consts"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/mldsa"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/utils"
)

// Transaction is the single persistent wire record: a value transfer
// authenticated by a PQ signature, optionally in hybrid mode with a
// classical signature.
//
// Encodings and digests are recomputed on demand; nothing is cached across
// calls, so a Transaction value is safe to share read-only across
// goroutines once constructed.
type Transaction struct {
	Version uint8  `json:"version"`
	ChainID uint32 `json:"chainId"`

	// Nonce is opaque here; replay accounting is the ledger's concern.
	Nonce uint64 `json:"nonce"`

	// FromPublicKey is the sender's PQ public key. Its length must match
	// the default algorithm's declared public key length.
	FromPublicKey codec.Bytes   `json:"fromPublicKey"`
	To            codec.Address `json:"to"`

	Amount uint64 `json:"amount"`
	Fee    uint64 `json:"fee"`

	Auth Auth `json:"auth"`
}

// New returns an unsigned transaction. [unsignedAuth] is the auth variant
// the transaction will eventually carry (its Signed() must be false for the
// PQ-only empty placeholder).
func New(chainID uint32, nonce uint64, from []byte, to codec.Address, amount uint64, fee uint64, unsignedAuth Auth) *Transaction {
	return &Transaction{
		Version:       consts.WireVersion,
		ChainID:       chainID,
		Nonce:         nonce,
		FromPublicKey: from,
		To:            to,
		Amount:        amount,
		Fee:           fee,
		Auth:          unsignedAuth,
	}
}

// UnsignedSize is the encoded size of everything the signature covers.
func (t *Transaction) UnsignedSize() int {
	return consts.ByteLen + consts.Uint32Len + consts.Uint64Len +
		consts.Uint16Len + len(t.FromPublicKey) + codec.AddressLen +
		consts.Uint64Len + consts.Uint64Len
}

// Size is the full encoded size, including the auth tag and payload.
func (t *Transaction) Size() int {
	return t.UnsignedSize() + consts.ByteLen + t.Auth.Size()
}

func (t *Transaction) marshalUnsigned(p *codec.Packer) {
	p.PackByte(t.Version)
	p.PackUint(t.ChainID)
	p.PackUint64(t.Nonce)
	p.PackShortBytes(t.FromPublicKey)
	p.PackFixedBytes(t.To[:])
	p.PackUint64(t.Amount)
	p.PackUint64(t.Fee)
}

// Marshal writes the full canonical encoding of t.
func (t *Transaction) Marshal(p *codec.Packer) {
	t.marshalUnsigned(p)
	p.PackByte(t.Auth.GetTypeID())
	t.Auth.Marshal(p)
}

// Bytes returns the full canonical encoding: the wire image. Encoding is a
// total function on structurally valid transactions; two semantically equal
// transactions produce byte-identical output.
func (t *Transaction) Bytes() ([]byte, error) {
	if t.Auth == nil {
		return nil, fmt.Errorf("%w: missing auth", ErrInvalidTransaction)
	}
	p := codec.NewWriter(t.Size(), consts.NetworkSizeLimit)
	t.Marshal(p)
	return p.Bytes(), p.Err()
}

// UnsignedBytes returns the signing-only encoding: every field except the
// auth tag and auth payload, so that signatures never cover themselves.
func (t *Transaction) UnsignedBytes() ([]byte, error) {
	p := codec.NewWriter(t.UnsignedSize(), consts.NetworkSizeLimit)
	t.marshalUnsigned(p)
	return p.Bytes(), p.Err()
}

// ID returns the SHA-256 of the full wire image.
func (t *Transaction) ID() (ids.ID, error) {
	b, err := t.Bytes()
	if err != nil {
		return ids.Empty, err
	}
	return utils.ToID(b), nil
}

// Sender attributes the transaction to an account: the address derived from
// the PQ public key.
func (t *Transaction) Sender() codec.Address {
	return utils.ToAddress(t.FromPublicKey)
}

// Digest returns the domain-separated signing digest for [chainID].
func (t *Transaction) Digest(chainID uint32) ([]byte, error) {
	unsigned, err := t.UnsignedBytes()
	if err != nil {
		return nil, err
	}
	msg := SigningMessage(chainID, unsigned)
	return msg[:], nil
}

// Sign returns a copy of t carrying the auth produced by [factory] over the
// digest for t's own chain id. The receiver is never mutated; any failure
// propagates with t untouched. The signed transaction is re-decoded from its
// own bytes before being returned, so the result is guaranteed wire-valid.
func (t *Transaction) Sign(factory AuthFactory, authRegistry *AuthRegistry) (*Transaction, error) {
	msg, err := t.Digest(t.ChainID)
	if err != nil {
		return nil, err
	}
	auth, err := factory.Sign(msg)
	if err != nil {
		return nil, err
	}

	signed := *t
	signed.Auth = auth

	// Ensure the signed transaction round-trips through the strict codec.
	b, err := signed.Bytes()
	if err != nil {
		return nil, err
	}
	p := codec.NewReader(b, consts.NetworkSizeLimit)
	return UnmarshalTx(p, authRegistry)
}

// Verify reports whether the auth payload authenticates the transaction for
// [chainID]. The digest is derived from the supplied chain id, not the
// transaction's own, which is what makes cross-chain replay fail. The result
// is strictly tri-state: (true, nil), (false, nil), or a backend fault.
//
// In hybrid mode the cheap classical verification runs first and
// short-circuits; the expensive PQ verification only runs once the
// classical signature holds.
func (t *Transaction) Verify(chainID uint32) (bool, error) {
	if t.Auth == nil {
		return false, fmt.Errorf("%w: missing auth", ErrInvalidTransaction)
	}
	msg, err := t.Digest(chainID)
	if err != nil {
		return false, err
	}
	return t.Auth.Verify(msg, t.FromPublicKey)
}

// UnmarshalTx strictly decodes one transaction and requires the reader to be
// fully consumed. Every length is validated before the corresponding bytes
// are read, and every exceptional path is a typed error; the decoder never
// panics.
func UnmarshalTx(p *codec.Packer, authRegistry *AuthRegistry) (*Transaction, error) {
	if p.Empty() {
		return nil, fmt.Errorf("%w: empty transaction data", ErrInvalidTransaction)
	}

	var t Transaction
	t.Version = p.UnpackByte()
	if err := p.Err(); err != nil {
		return nil, err
	}
	if t.Version != consts.WireVersion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, t.Version)
	}

	t.ChainID = p.UnpackUint()
	t.Nonce = p.UnpackUint64()

	var pubkey []byte
	p.UnpackShortBytes(&pubkey)
	if err := p.Err(); err != nil {
		return nil, err
	}
	if len(pubkey) != mldsa.DefaultPublicKeyLen {
		return nil, fmt.Errorf("%w: public key size %d != %d",
			crypto.ErrInvalidPublicKey, len(pubkey), mldsa.DefaultPublicKeyLen)
	}
	t.FromPublicKey = pubkey

	var to []byte
	p.UnpackFixedBytes(codec.AddressLen, &to)
	t.To = codec.ToAddress(to)

	t.Amount = p.UnpackUint64()
	t.Fee = p.UnpackUint64()

	authTag := p.UnpackByte()
	if err := p.Err(); err != nil {
		return nil, err
	}
	unmarshalAuth, ok := authRegistry.Lookup(authTag)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAuthTag, authTag)
	}
	auth, err := unmarshalAuth(p)
	if err != nil {
		return nil, err
	}
	t.Auth = auth

	if err := p.Err(); err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, p.Remaining())
	}
	return &t, nil
}

// UnmarshalTxBytes decodes a transaction from its wire image.
func UnmarshalTxBytes(b []byte, authRegistry *AuthRegistry) (*Transaction, error) {
	return UnmarshalTx(codec.NewReader(b, consts.NetworkSizeLimit), authRegistry)
}
