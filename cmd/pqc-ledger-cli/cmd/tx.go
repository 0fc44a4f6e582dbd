// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Mouhamedaminegarrach/pqc-ledger-task/auth"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/chain"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/cli"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/codec"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/ed25519"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/crypto/mldsa"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/registry"
	"github.com/Mouhamedaminegarrach/pqc-ledger-task/utils"
)

var (
	txChainID    uint32
	txNonce      uint64
	txFromFile   string
	txTo         string
	txAmount     uint64
	txFee        uint64
	txText       string
	txPQKeyFile  string
	txEd25519Key string

	txCmd = &cobra.Command{
		Use: "tx",
		RunE: func(*cobra.Command, []string) error {
			return ErrInvalidArgs
		},
	}

	createTxCmd = &cobra.Command{
		Use:   "create",
		Short: "build an unsigned transaction",
		RunE: func(*cobra.Command, []string) error {
			expected, err := mldsa.PublicKeyLen(algorithm)
			if err != nil {
				return err
			}
			from, err := cli.LoadKeyBytes(txFromFile, expected)
			if err != nil {
				return err
			}
			var to codec.Address
			if err := to.UnmarshalText([]byte(txTo)); err != nil {
				return ErrInvalidAddress
			}

			t := chain.New(txChainID, txNonce, from, to, txAmount, txFee, &auth.PQ{})
			b, err := t.Bytes()
			if err != nil {
				return err
			}
			return printTx(b)
		},
	}

	signTxCmd = &cobra.Command{
		Use:   "sign",
		Short: "sign a transaction (hybrid when an Ed25519 key is supplied)",
		RunE: func(*cobra.Command, []string) error {
			t, err := loadTx()
			if err != nil {
				return err
			}
			expected, err := mldsa.PrivateKeyLen(algorithm)
			if err != nil {
				return err
			}
			pqPriv, err := cli.LoadKeyBytes(txPQKeyFile, expected)
			if err != nil {
				return err
			}

			var factory chain.AuthFactory = auth.NewPQFactoryWithAlgorithm(pqPriv, algorithm)
			if txEd25519Key != "" {
				edBytes, err := cli.LoadKeyBytes(txEd25519Key, ed25519.PrivateKeyLen)
				if err != nil {
					return err
				}
				var edPriv ed25519.PrivateKey
				copy(edPriv[:], edBytes)
				factory = auth.NewHybridFactory(pqPriv, edPriv)
			}

			signed, err := t.Sign(factory, registry.Auth)
			if err != nil {
				return err
			}
			b, err := signed.Bytes()
			if err != nil {
				return err
			}
			return printTx(b)
		},
	}

	verifyTxCmd = &cobra.Command{
		Use:   "verify",
		Short: "verify a transaction against a chain id",
		RunE: func(*cobra.Command, []string) error {
			t, err := loadTx()
			if err != nil {
				return err
			}
			valid, err := t.Validate(txChainID)
			if err != nil {
				return err
			}
			if !valid {
				utils.Outf("{{red}}invalid{{/}}\n")
				return nil
			}
			utils.Outf("{{green}}valid{{/}}\n")
			utils.Outf("{{yellow}}sender:{{/}} %s\n", t.Sender())
			return nil
		},
	}

	inspectTxCmd = &cobra.Command{
		Use:   "inspect",
		Short: "decode a transaction and print its fields",
		RunE: func(*cobra.Command, []string) error {
			t, err := loadTx()
			if err != nil {
				return err
			}
			id, err := t.ID()
			if err != nil {
				return err
			}
			utils.Outf("{{yellow}}id:{{/}} %s\n", id)
			utils.Outf("{{yellow}}version:{{/}} %d\n", t.Version)
			utils.Outf("{{yellow}}chain id:{{/}} %d\n", t.ChainID)
			utils.Outf("{{yellow}}nonce:{{/}} %d\n", t.Nonce)
			utils.Outf("{{yellow}}sender:{{/}} %s\n", t.Sender())
			utils.Outf("{{yellow}}to:{{/}} %s\n", t.To)
			utils.Outf("{{yellow}}amount:{{/}} %d\n", t.Amount)
			utils.Outf("{{yellow}}fee:{{/}} %d\n", t.Fee)
			utils.Outf("{{yellow}}auth tag:{{/}} %d\n", t.Auth.GetTypeID())
			utils.Outf("{{yellow}}signed:{{/}} %t\n", t.Auth.Signed())
			return nil
		},
	}
)

func init() {
	txCmd.AddCommand(createTxCmd, signTxCmd, verifyTxCmd, inspectTxCmd)

	createTxCmd.Flags().Uint32Var(&txChainID, "chain", 1, "target chain id")
	createTxCmd.Flags().Uint64Var(&txNonce, "nonce", 0, "transaction nonce")
	createTxCmd.Flags().StringVar(&txFromFile, "from", "", "sender PQ public key file")
	createTxCmd.Flags().StringVar(&txTo, "to", "", "recipient address (64 hex chars)")
	createTxCmd.Flags().Uint64Var(&txAmount, "amount", 0, "transfer amount")
	createTxCmd.Flags().Uint64Var(&txFee, "fee", 0, "transaction fee")

	signTxCmd.Flags().StringVar(&txText, "tx", "", "encoded transaction")
	signTxCmd.Flags().StringVar(&txPQKeyFile, "pq-key", "", "PQ private key file")
	signTxCmd.Flags().StringVar(&txEd25519Key, "ed25519-key", "", "Ed25519 private key file (enables hybrid)")

	verifyTxCmd.Flags().StringVar(&txText, "tx", "", "encoded transaction")
	verifyTxCmd.Flags().Uint32Var(&txChainID, "chain", 1, "expected chain id")

	inspectTxCmd.Flags().StringVar(&txText, "tx", "", "encoded transaction")
}

func loadTx() (*chain.Transaction, error) {
	b, err := loadTxBytes()
	if err != nil {
		return nil, err
	}
	return chain.UnmarshalTxBytes(b, registry.Auth)
}

func loadTxBytes() ([]byte, error) {
	switch format {
	case formatHex:
		return codec.LoadHex(txText, -1)
	case formatBase64:
		return codec.LoadBase64(txText)
	default:
		return nil, ErrInvalidFormat
	}
}

func printTx(b []byte) error {
	switch format {
	case formatHex:
		utils.Outf("%s\n", codec.ToHex(b))
	case formatBase64:
		utils.Outf("%s\n", codec.ToBase64(b))
	default:
		return ErrInvalidFormat
	}
	return nil
}
