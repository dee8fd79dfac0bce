// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ava-labs/commitment-signer/utils/formatting"
	"github.com/ava-labs/commitment-signer/utils/logging"
)

// EnvPrefix is prepended to every flag name, upper cased with dashes replaced
// by underscores, to form the environment variable that sets it.
const EnvPrefix = "commitment_signer"

// AddFlags registers every configuration flag on [fs].
func AddFlags(fs *pflag.FlagSet) {
	// Config file
	fs.String(ConfigFileKey, "", "Specifies a JSON or YAML config file")

	// Logging
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, logging.Plain.String(), "The log format. Should be one of {plain, json}")
	fs.String(LogDirKey, "", "Directory to write rotating log files to. Logs are only displayed if empty")

	// Identity
	fs.String(KeyFileKey, "", fmt.Sprintf("Path to a file holding a private key formatted as %q", "PrivateKey-<cb58>"))
	fs.String(MnemonicKey, "", "BIP-39 mnemonic to derive the private key from")
	fs.String(PasswordKey, "", "Password mixed into the BIP-39 seed")

	// Output
	fs.String(EncodingKey, formatting.HexNC.String(), "Encoding of printed signatures. Should be one of {hex, hexnc, cb58}")
}

// BuildFlagSet returns a flag set with every configuration flag registered.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("commitment-signer", pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}
