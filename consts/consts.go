// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/avalanchego/utils/units"

const (
	// WireVersion is the only transaction wire version this library
	// understands. Version negotiation is deliberately absent.
	WireVersion uint8 = 1

	IDLen     = 32
	ByteLen   = 1
	Uint16Len = 2
	Uint32Len = 4
	Uint64Len = 8

	MaxUint8  = ^uint8(0)
	MaxUint16 = ^uint16(0)
	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)

	// NetworkSizeLimit bounds any single encoded transaction. A v1
	// transaction with the largest supported PQ algorithm stays well
	// under this.
	NetworkSizeLimit = 2 * units.MiB
)
