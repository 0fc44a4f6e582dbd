// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/consts"
)

// Packer is a strict canonical writer/reader over [wrappers.Packer]. All
// multi-byte integers are big-endian. Variable-length runs carry a u16
// big-endian length prefix that is validated against the remaining buffer
// before any bytes are committed to reading. Errors accumulate; the first
// one wins and every later operation is a no-op.
type Packer struct {
	p       *wrappers.Packer
	reading bool

	// err holds errors raised by this wrapper (mismatched or oversize
	// lengths). Errors raised inside [wrappers.Packer] are translated by
	// Err.
	err error
}

// NewWriter returns a Packer with an initial capacity of [initial] bytes
// that errors if more than [maxSize] bytes are packed.
func NewWriter(initial int, maxSize int) *Packer {
	return &Packer{
		p: &wrappers.Packer{
			Bytes:   make([]byte, 0, initial),
			MaxSize: maxSize,
		},
	}
}

// NewReader returns a Packer positioned at the start of [src].
func NewReader(src []byte, maxSize int) *Packer {
	return &Packer{
		p:       &wrappers.Packer{Bytes: src, MaxSize: maxSize},
		reading: true,
	}
}

func (p *Packer) PackByte(v uint8) {
	p.p.PackByte(v)
}

func (p *Packer) UnpackByte() uint8 {
	return p.p.UnpackByte()
}

func (p *Packer) PackShort(v uint16) {
	p.p.PackShort(v)
}

func (p *Packer) UnpackShort() uint16 {
	return p.p.UnpackShort()
}

func (p *Packer) PackUint(v uint32) {
	p.p.PackInt(v)
}

func (p *Packer) UnpackUint() uint32 {
	return p.p.UnpackInt()
}

func (p *Packer) PackUint64(v uint64) {
	p.p.PackLong(v)
}

func (p *Packer) UnpackUint64() uint64 {
	return p.p.UnpackLong()
}

// PackFixedBytes emits [b] with no length prefix.
func (p *Packer) PackFixedBytes(b []byte) {
	p.p.PackFixedBytes(b)
}

// UnpackFixedBytes reads exactly [size] bytes into [dest].
func (p *Packer) UnpackFixedBytes(size int, dest *[]byte) {
	*dest = p.p.UnpackFixedBytes(size)
}

// PackShortBytes emits a u16 big-endian length prefix followed by [b]. The
// length must fit in 16 bits.
func (p *Packer) PackShortBytes(b []byte) {
	if len(b) > int(consts.MaxUint16) {
		p.addErr(fmt.Errorf("%w: %d > %d", ErrInvalidSize, len(b), consts.MaxUint16))
		return
	}
	p.p.PackShort(uint16(len(b)))
	p.p.PackFixedBytes(b)
}

// UnpackShortBytes reads a u16 length prefix and then that many bytes. The
// advertised length is checked against the remaining buffer before the read.
func (p *Packer) UnpackShortBytes(dest *[]byte) {
	count := p.p.UnpackShort()
	if p.Errored() {
		return
	}
	if remaining := p.Remaining(); int(count) > remaining {
		p.addErr(fmt.Errorf("%w: %d > %d", ErrMismatchedLength, count, remaining))
		return
	}
	*dest = p.p.UnpackFixedBytes(int(count))
}

// Empty reports whether the read cursor is at end-of-buffer.
func (p *Packer) Empty() bool {
	return p.p.Offset == len(p.p.Bytes)
}

// Remaining returns the number of unread bytes.
func (p *Packer) Remaining() int {
	return len(p.p.Bytes) - p.p.Offset
}

func (p *Packer) Offset() int {
	return p.p.Offset
}

func (p *Packer) Bytes() []byte {
	return p.p.Bytes
}

func (p *Packer) Errored() bool {
	return p.err != nil || p.p.Errored()
}

// Err returns the first error hit, if any. Reads past the end of the buffer
// surface as [ErrInvalidLengthPrefix]; writer-side failures are returned
// as-is.
func (p *Packer) Err() error {
	if p.err != nil {
		return p.err
	}
	if p.p.Errored() {
		if p.reading {
			return ErrInvalidLengthPrefix
		}
		return p.p.Err
	}
	return nil
}

func (p *Packer) addErr(err error) {
	if !p.Errored() {
		p.err = err
		p.p.Add(err)
	}
}
