// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/formatting"
	"github.com/ava-labs/commitment-signer/utils/logging"
)

const loggerName = "commitment-signer"

var (
	errMissingKeySource      = fmt.Errorf("either --%s or --%s must be provided", KeyFileKey, MnemonicKey)
	errConflictingKeySources = fmt.Errorf("only one of --%s and --%s may be provided", KeyFileKey, MnemonicKey)
	errPasswordWithoutPhrase = fmt.Errorf("--%s requires --%s", PasswordKey, MnemonicKey)
	errEmptyKeyFile          = errors.New("key file is empty")
)

type Config struct {
	LoggingConfig logging.Config `json:"loggingConfig"`

	KeyFile  string `json:"keyFile"`
	Mnemonic string `json:"-"`
	Password string `json:"-"`

	Encoding formatting.Encoding `json:"encoding"`
}

// BuildViper binds the already parsed [fs] and the environment into a new
// viper instance. If a config file is named, its values are read in as the
// fallback for anything not set by a flag or an environment variable.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

// GetConfig validates the values in [v]. The key source is only checked for
// conflicts here since not every command needs a key. A password without a
// mnemonic is allowed so that key generation can use it.
func GetConfig(v *viper.Viper) (Config, error) {
	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	encoding, err := formatting.ToEncoding(v.GetString(EncodingKey))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		LoggingConfig: loggingConfig,
		KeyFile:       os.ExpandEnv(v.GetString(KeyFileKey)),
		Mnemonic:      strings.TrimSpace(v.GetString(MnemonicKey)),
		Password:      v.GetString(PasswordKey),
		Encoding:      encoding,
	}
	if config.KeyFile != "" && config.Mnemonic != "" {
		return Config{}, errConflictingKeySources
	}
	return config, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.DefaultConfig()
	loggingConfig.LoggerName = loggerName
	loggingConfig.Directory = os.ExpandEnv(v.GetString(LogDirKey))

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.DisplayLevel = loggingConfig.LogLevel

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	return loggingConfig, err
}

// LoadKey returns the identity named by the config.
func (c Config) LoadKey() (*secp256k1.PrivateKey, error) {
	switch {
	case c.KeyFile != "" && c.Password != "":
		return nil, errPasswordWithoutPhrase
	case c.KeyFile != "":
		keyBytes, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("couldn't read key file %q: %w", c.KeyFile, err)
		}
		keyStr := strings.TrimSpace(string(keyBytes))
		if keyStr == "" {
			return nil, fmt.Errorf("%w: %q", errEmptyKeyFile, c.KeyFile)
		}
		return secp256k1.ToPrivateKeyString(keyStr)
	case c.Mnemonic != "":
		return secp256k1.NewPrivateKeyFromMnemonic(c.Mnemonic, c.Password)
	default:
		return nil, errMissingKeySource
	}
}

// ParseFlags builds the config from the already parsed [fs], the environment
// and the optional config file.
func ParseFlags(fs *pflag.FlagSet) (Config, error) {
	v, err := BuildViper(fs)
	if err != nil {
		return Config{}, err
	}
	return GetConfig(v)
}
