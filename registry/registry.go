// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/auth"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/chain"
)

// Auth maps wire auth tags to decoders. Populated once at load and
// read-only afterwards, so it is safe for parallel use without locks.
var Auth *chain.AuthRegistry

// Setup types
func init() {
	Auth = chain.NewAuthRegistry()

	errs := &wrappers.Errs{}
	errs.Add(
		// Tags come from each variant's GetTypeID: PQ = 0, Hybrid = 1.
		Auth.Register(&auth.PQ{}, auth.UnmarshalPQ),
		Auth.Register(&auth.Hybrid{}, auth.UnmarshalHybrid),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}
