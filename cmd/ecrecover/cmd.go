// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecrecover

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/commitment-signer/cmd/sign"
	"github.com/ava-labs/commitment-signer/config"
	"github.com/ava-labs/commitment-signer/signer/ecdsa"
	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/formatting"
	"github.com/ava-labs/commitment-signer/utils/logging"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "recover <message> <signature>",
		Short: "Recovers the key that signed a commitment",
		Args:  cobra.ExactArgs(2),
		RunE:  recoverFunc,
	}
	c.Flags().String(sign.MessageEncodingKey, sign.UTF8Encoding, "Encoding of the message argument. Should be one of {utf8, hex}")
	return c
}

func recoverFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := config.ParseFlags(flags)
	if err != nil {
		return err
	}

	log := logging.NewFromConfig(config.LoggingConfig)
	defer log.Stop()

	messageEncoding, err := flags.GetString(sign.MessageEncodingKey)
	if err != nil {
		return err
	}
	message, err := sign.ParseMessage(messageEncoding, args[0])
	if err != nil {
		return err
	}

	sigBytes, err := formatting.Decode(config.Encoding, args[1])
	if err != nil {
		return err
	}
	sig, err := secp256k1.SignatureFromBytes(sigBytes)
	if err != nil {
		return err
	}

	pk, err := ecdsa.NewVerifier(1).Recover(message, sig)
	if err != nil {
		log.Debug("failed to recover signer",
			zap.Stringer("signature", sig),
			zap.Error(err),
		)
		return err
	}

	pkStr, err := formatting.Encode(formatting.HexNC, pk.Bytes())
	if err != nil {
		return err
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "public key: %s\n", pkStr)
	fmt.Fprintf(out, "address:    %s\n", pk.EthAddress())
	return nil
}
