// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"
)

const (
	formatHex    = "hex"
	formatBase64 = "b64"
)

var (
	algorithm string
	format    string

	rootCmd = &cobra.Command{
		Use:        "pqc-ledger-cli",
		Short:      "PQ-authenticated transaction CLI",
		SuggestFor: []string{"pqc-ledger-cli", "pqcledgercli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		keyCmd,
		txCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&algorithm,
		"algorithm",
		"ML-DSA-65",
		"PQ signature algorithm",
	)
	rootCmd.PersistentFlags().StringVar(
		&format,
		"format",
		formatHex,
		"transaction text encoding (hex or b64)",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
