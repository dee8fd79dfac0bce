// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keygen

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/commitment-signer/config"
	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/formatting"
	"github.com/ava-labs/commitment-signer/utils/logging"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generates a new mnemonic and prints the derived key",
		Args:  cobra.NoArgs,
		RunE:  keygenFunc,
	}
}

func keygenFunc(c *cobra.Command, _ []string) error {
	config, err := config.ParseFlags(c.Flags())
	if err != nil {
		return err
	}

	log := logging.NewFromConfig(config.LoggingConfig)
	defer log.Stop()

	key, mnemonic, err := secp256k1.GenerateWithPhrase(config.Password)
	if err != nil {
		return err
	}

	pk := key.PublicKey()
	pkStr, err := formatting.Encode(formatting.HexNC, pk.Bytes())
	if err != nil {
		return err
	}
	addr := pk.Address()
	addrStr, err := formatting.Encode(formatting.CB58, addr[:])
	if err != nil {
		return err
	}

	log.Info("generated key",
		zap.Stringer("ethAddress", pk.EthAddress()),
	)

	out := c.OutOrStdout()
	fmt.Fprintf(out, "mnemonic:    %s\n", mnemonic)
	fmt.Fprintf(out, "private key: %s\n", key)
	fmt.Fprintf(out, "public key:  %s\n", pkStr)
	fmt.Fprintf(out, "address:     %s\n", addrStr)
	fmt.Fprintf(out, "eth address: %s\n", pk.EthAddress())
	return nil
}
