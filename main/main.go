// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/commitment-signer/cmd/ecrecover"
	"github.com/ava-labs/commitment-signer/cmd/keygen"
	"github.com/ava-labs/commitment-signer/cmd/sign"
	"github.com/ava-labs/commitment-signer/config"
)

func init() {
	cobra.EnablePrefixMatching = true
}

// NewCommand returns the root of the command tree with every configuration
// flag registered as persistent.
func NewCommand() *cobra.Command {
	c := &cobra.Command{
		Use:          "commitment-signer",
		Short:        "Signs and verifies finality commitments",
		SilenceUsage: true,
	}
	config.AddFlags(c.PersistentFlags())
	c.AddCommand(
		sign.Command(),
		ecrecover.Command(),
		keygen.Command(),
	)
	return c
}

func main() {
	if err := NewCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "command failed %v\n", err)
		os.Exit(1)
	}
}
