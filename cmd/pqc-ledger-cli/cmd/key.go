// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/auth"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/cli"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/ed25519"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/mldsa"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/utils"
)

var (
	keyOut      string
	withEd25519 bool

	keyCmd = &cobra.Command{
		Use: "key",
		RunE: func(*cobra.Command, []string) error {
			return ErrInvalidArgs
		},
	}

	generateKeyCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate a PQ keypair (and optionally an Ed25519 keypair)",
		RunE: func(*cobra.Command, []string) error {
			paths := []string{keyOut, keyOut + ".pub"}
			if withEd25519 {
				paths = append(paths, keyOut+".ed25519")
			}
			for _, path := range paths {
				if cli.KeyFileExists(path) {
					if err := confirmOverwrite(path); err != nil {
						return err
					}
				}
			}

			pub, priv, err := mldsa.GenerateKeyPair(algorithm)
			if err != nil {
				return err
			}
			if err := cli.StoreKeyBytes(keyOut, priv); err != nil {
				return err
			}
			if err := cli.StoreKeyBytes(keyOut+".pub", pub); err != nil {
				return err
			}
			utils.Outf("{{green}}created PQ key:{{/}} %s (.pub)\n", keyOut)
			utils.Outf("{{yellow}}address:{{/}} %s\n", auth.NewPQAddress(pub))

			if withEd25519 {
				edPriv, err := ed25519.GeneratePrivateKey()
				if err != nil {
					return err
				}
				edPath := keyOut + ".ed25519"
				if err := cli.StoreKeyBytes(edPath, edPriv[:]); err != nil {
					return err
				}
				utils.Outf("{{green}}created Ed25519 key:{{/}} %s\n", edPath)
			}
			return nil
		},
	}

	addressKeyCmd = &cobra.Command{
		Use:   "address [pubkey file]",
		Short: "print the address of a PQ public key",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrInvalidArgs
			}
			expected, err := mldsa.PublicKeyLen(algorithm)
			if err != nil {
				return err
			}
			pub, err := cli.LoadKeyBytes(args[0], expected)
			if err != nil {
				return err
			}
			utils.Outf("{{yellow}}address:{{/}} %s\n", auth.NewPQAddress(pub))
			return nil
		},
	}
)

func init() {
	keyCmd.AddCommand(generateKeyCmd, addressKeyCmd)
	generateKeyCmd.Flags().StringVar(&keyOut, "out", "pq.key", "output path for the private key")
	generateKeyCmd.Flags().BoolVar(&withEd25519, "ed25519", false, "also generate an Ed25519 key for hybrid signing")
}

func confirmOverwrite(path string) error {
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s exists, overwrite", path),
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return ErrAborted
	}
	return nil
}
