// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sign

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/commitment-signer/signer"
	"github.com/ava-labs/commitment-signer/signer/ecdsa"
	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/formatting"
	"github.com/ava-labs/commitment-signer/utils/logging"
)

const metricsNamespace = "commitment_signer"

var errAddressMismatch = errors.New("recovered address does not match the signing key")

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "sign <message>",
		Short: "Signs a commitment with Keccak-256 and secp256k1",
		Args:  cobra.ExactArgs(1),
		RunE:  signFunc,
	}
	flags := c.Flags()
	AddFlags(flags)
	return c
}

func signFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	log := logging.NewFromConfig(config.LoggingConfig)
	defer log.Stop()

	key, err := config.LoadKey()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	inner := ecdsa.New(key)
	commitmentSigner, err := signer.NewMetered[secp256k1.Signature](
		metricsNamespace,
		inner,
		log,
		registry,
	)
	if err != nil {
		return err
	}

	sig := commitmentSigner.Sign(config.Message)
	digest := inner.Digest(config.Message)

	verifier := ecdsa.NewVerifier(1)
	address, err := verifier.RecoverEthAddress(config.Message, sig)
	if err != nil {
		return err
	}
	if expected := key.PublicKey().EthAddress(); address != expected {
		log.Error("recovered unexpected address",
			zap.Stringer("expected", expected),
			zap.Stringer("recovered", address),
		)
		return errAddressMismatch
	}

	sigStr, err := formatting.Encode(config.Encoding, sig.Bytes())
	if err != nil {
		return err
	}
	digestStr, err := formatting.Encode(formatting.HexNC, digest[:])
	if err != nil {
		return err
	}

	log.Info("signed commitment",
		zap.Int("messageLen", len(config.Message)),
		zap.Stringer("address", address),
	)

	out := c.OutOrStdout()
	fmt.Fprintf(out, "signature: %s\n", sigStr)
	fmt.Fprintf(out, "digest:    %s\n", digestStr)
	fmt.Fprintf(out, "address:   %s\n", address)

	if !config.PrintMetrics {
		return nil
	}
	return writeMetrics(c.ErrOrStderr(), registry)
}

// writeMetrics writes every metric in [gatherer] in the Prometheus text
// exposition format.
func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}
