// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey = "config-file"
	LogLevelKey   = "log-level"
	LogFormatKey  = "log-format"
	LogDirKey     = "log-dir"
	KeyFileKey    = "key-file"
	MnemonicKey   = "mnemonic"
	PasswordKey   = "password"
	EncodingKey   = "encoding"
)
