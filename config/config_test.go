// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/formatting"
	"github.com/ava-labs/commitment-signer/utils/logging"
)

const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

func parseConfig(t *testing.T, args ...string) (Config, error) {
	fs := BuildFlagSet()
	require.NoError(t, fs.Parse(args))
	v, err := BuildViper(fs)
	require.NoError(t, err)
	return GetConfig(v)
}

func writeFile(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestGetConfigDefaults(t *testing.T) {
	require := require.New(t)

	config, err := parseConfig(t)
	require.NoError(err)
	require.Equal(logging.Info, config.LoggingConfig.LogLevel)
	require.Equal(logging.Info, config.LoggingConfig.DisplayLevel)
	require.Equal(logging.Plain, config.LoggingConfig.LogFormat)
	require.Equal(loggerName, config.LoggingConfig.LoggerName)
	require.Empty(config.LoggingConfig.Directory)
	require.Equal(formatting.HexNC, config.Encoding)

	_, err = config.LoadKey()
	require.ErrorIs(err, errMissingKeySource)
}

func TestGetConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "conflicting key sources",
			args:        []string{"--key-file=key.txt", "--mnemonic=" + testMnemonic},
			expectedErr: errConflictingKeySources,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseConfig(t, test.args...)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}

func TestGetConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "log level",
			args: []string{"--log-level=loud"},
		},
		{
			name: "log format",
			args: []string{"--log-format=xml"},
		},
		{
			name: "encoding",
			args: []string{"--encoding=base64"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseConfig(t, test.args...)
			require.Error(t, err) //nolint:forbidigo // errors come from other packages
		})
	}
}

func TestGetConfigFlags(t *testing.T) {
	require := require.New(t)

	logDir := t.TempDir()
	config, err := parseConfig(t,
		"--log-level=debug",
		"--log-format=json",
		"--log-dir="+logDir,
		"--encoding=cb58",
	)
	require.NoError(err)
	require.Equal(logging.Debug, config.LoggingConfig.LogLevel)
	require.Equal(logging.Debug, config.LoggingConfig.DisplayLevel)
	require.Equal(logging.JSON, config.LoggingConfig.LogFormat)
	require.Equal(logDir, config.LoggingConfig.Directory)
	require.Equal(formatting.CB58, config.Encoding)
}

func TestGetConfigEnv(t *testing.T) {
	require := require.New(t)

	t.Setenv("COMMITMENT_SIGNER_LOG_LEVEL", "warn")
	t.Setenv("COMMITMENT_SIGNER_ENCODING", "hex")

	config, err := parseConfig(t)
	require.NoError(err)
	require.Equal(logging.Warn, config.LoggingConfig.LogLevel)
	require.Equal(formatting.Hex, config.Encoding)

	// Flags take precedence over the environment.
	config, err = parseConfig(t, "--encoding=cb58")
	require.NoError(err)
	require.Equal(formatting.CB58, config.Encoding)
}

func TestGetConfigFile(t *testing.T) {
	require := require.New(t)

	configFile := writeFile(t, "config.json", fmt.Sprintf(`{
	"log-level": "verbo",
	"encoding": "hex",
	"mnemonic": %q,
	"password": "password"
}`, testMnemonic))

	config, err := parseConfig(t, "--config-file="+configFile)
	require.NoError(err)
	require.Equal(logging.Verbo, config.LoggingConfig.LogLevel)
	require.Equal(formatting.Hex, config.Encoding)

	key, err := config.LoadKey()
	require.NoError(err)
	expectedKey, err := secp256k1.NewPrivateKeyFromMnemonic(testMnemonic, "password")
	require.NoError(err)
	require.Equal(expectedKey.Bytes(), key.Bytes())

	// Flags take precedence over the config file.
	config, err = parseConfig(t, "--config-file="+configFile, "--encoding=cb58")
	require.NoError(err)
	require.Equal(formatting.CB58, config.Encoding)
}

func TestGetConfigMissingFile(t *testing.T) {
	fs := BuildFlagSet()
	require.NoError(t, fs.Parse([]string{"--config-file=" + filepath.Join(t.TempDir(), "missing.json")}))
	_, err := BuildViper(fs)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadKeyFile(t *testing.T) {
	require := require.New(t)

	expectedKey, err := secp256k1.NewPrivateKey()
	require.NoError(err)
	keyFile := writeFile(t, "key.txt", expectedKey.String()+"\n")

	config, err := parseConfig(t, "--key-file="+keyFile)
	require.NoError(err)
	key, err := config.LoadKey()
	require.NoError(err)
	require.Equal(expectedKey.Bytes(), key.Bytes())
	require.Equal(expectedKey.PublicKey().EthAddress(), key.PublicKey().EthAddress())
}

func TestLoadKeyFileErrors(t *testing.T) {
	require := require.New(t)

	config := Config{KeyFile: writeFile(t, "empty.txt", "  \n")}
	_, err := config.LoadKey()
	require.ErrorIs(err, errEmptyKeyFile)

	config = Config{KeyFile: filepath.Join(t.TempDir(), "missing.txt")}
	_, err = config.LoadKey()
	require.ErrorIs(err, os.ErrNotExist)

	config = Config{
		KeyFile:  writeFile(t, "key.txt", "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN"),
		Password: "password",
	}
	_, err = config.LoadKey()
	require.ErrorIs(err, errPasswordWithoutPhrase)

	config = Config{Mnemonic: "not a mnemonic"}
	_, err = config.LoadKey()
	require.Error(err) //nolint:forbidigo // error is unexported by secp256k1
}
