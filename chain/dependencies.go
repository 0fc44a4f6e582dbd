// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
)

// Auth is the transaction authentication payload. Exactly two
// implementations exist (PQ-only and hybrid); the wire tag is GetTypeID and
// nothing else, so a tag can never disagree with its payload shape.
type Auth interface {
	// GetTypeID is the wire auth tag.
	GetTypeID() uint8

	// Size is the encoded size of the payload in bytes, excluding the tag.
	Size() int

	Marshal(p *codec.Packer)

	// Validate checks that every embedded run has the exact length its
	// algorithm declares. It performs no cryptography.
	Validate() error

	// Verify reports whether the payload authenticates [msg] for the
	// transaction's PQ public key [signer]. Size-mismatched material
	// verifies to false; only backend faults return an error.
	Verify(msg []byte, signer []byte) (bool, error)

	// Signed reports whether the payload carries any signature material.
	Signed() bool
}

// AuthFactory signs digests on behalf of one keyholder.
type AuthFactory interface {
	Sign(msg []byte) (Auth, error)
}

// AuthDecoder decodes one auth payload from the wire.
type AuthDecoder func(*codec.Packer) (Auth, error)

// AuthRegistry maps wire auth tags to payload decoders. The tag is taken
// from each variant's own GetTypeID, so a registered decoder can never sit
// under the wrong tag; registering two variants with one tag fails.
// Populate once at load; the registry is read-only afterwards and safe for
// parallel use without locks.
type AuthRegistry struct {
	decoders map[uint8]AuthDecoder
}

func NewAuthRegistry() *AuthRegistry {
	return &AuthRegistry{decoders: map[uint8]AuthDecoder{}}
}

func (r *AuthRegistry) Register(a Auth, f AuthDecoder) error {
	tag := a.GetTypeID()
	if _, ok := r.decoders[tag]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateAuthType, tag)
	}
	r.decoders[tag] = f
	return nil
}

// Lookup returns the decoder registered for an auth tag.
func (r *AuthRegistry) Lookup(tag uint8) (AuthDecoder, bool) {
	f, ok := r.decoders[tag]
	return f, ok
}
