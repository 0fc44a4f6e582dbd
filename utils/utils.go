// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	formatter "github.com/onsi/ginkgo/v2/formatter"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
)

// ToID returns the SHA-256 digest of [bytes] as an ID.
func ToID(bytes []byte) ids.ID {
	return ids.ID(hashing.ComputeHash256Array(bytes))
}

// ToAddress derives the account identifier for a public key: the first 32
// bytes of SHA-256 over the raw key bytes.
func ToAddress(pubkey []byte) codec.Address {
	return codec.Address(hashing.ComputeHash256Array(pubkey))
}

// Outf writes colored output to stdout.
//
// e.g.,
//
//	Outf("{{green}}{{bold}}hi there %q{{/}}", "aa")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}
