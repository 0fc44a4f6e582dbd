// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "pqc-ledger-cli" builds, signs, and verifies PQ-authenticated value
// transfers from the command line.
package main

import (
	"os"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/cmd/pqc-ledger-cli/cmd"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}pqc-ledger-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
