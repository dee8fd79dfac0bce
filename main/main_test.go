// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/hashing"
)

const (
	testMnemonic   = "legal winner thank year wave sausage worth useful legal winner thank yellow"
	testCommitment = "this is a beefy commitment"
)

// run executes the command tree with [args] and returns the printed fields
// keyed by their label.
func run(t *testing.T, args ...string) (map[string]string, error) {
	c := NewCommand()
	out := &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(append(args, "--log-level=off"))
	if err := c.Execute(); err != nil {
		return nil, err
	}

	fields := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		label, value, ok := strings.Cut(line, ":")
		require.True(t, ok, line)
		fields[label] = strings.TrimSpace(value)
	}
	return fields, nil
}

func TestSignThenRecover(t *testing.T) {
	require := require.New(t)

	key, err := secp256k1.NewPrivateKeyFromMnemonic(testMnemonic, "password")
	require.NoError(err)
	expectedAddress := key.PublicKey().EthAddress().String()
	expectedDigest := hashing.ComputeKeccak256([]byte(testCommitment))

	signed, err := run(t, "sign", testCommitment, "--mnemonic="+testMnemonic, "--password=password")
	require.NoError(err)
	require.Equal(expectedAddress, signed["address"])
	require.Equal("0x"+hex.EncodeToString(expectedDigest), signed["digest"])

	recovered, err := run(t, "recover", testCommitment, signed["signature"])
	require.NoError(err)
	require.Equal(expectedAddress, recovered["address"])

	// A different message recovers a different signer.
	recovered, err = run(t, "recover", testCommitment+"!", signed["signature"])
	require.NoError(err)
	require.NotEqual(expectedAddress, recovered["address"])
}

func TestSignHexMessage(t *testing.T) {
	require := require.New(t)

	hexMessage := "0x" + hex.EncodeToString([]byte(testCommitment))
	fromHex, err := run(t, "sign", hexMessage, "--message-encoding=hex", "--mnemonic="+testMnemonic)
	require.NoError(err)
	fromUTF8, err := run(t, "sign", testCommitment, "--mnemonic="+testMnemonic)
	require.NoError(err)
	require.Equal(fromUTF8, fromHex)
}

func TestSignCB58(t *testing.T) {
	require := require.New(t)

	signed, err := run(t, "sign", testCommitment, "--mnemonic="+testMnemonic, "--encoding=cb58")
	require.NoError(err)
	require.False(strings.HasPrefix(signed["signature"], "0x"))

	recovered, err := run(t, "recover", testCommitment, signed["signature"], "--encoding=cb58")
	require.NoError(err)
	require.Equal(signed["address"], recovered["address"])
}

func TestSignPrintMetrics(t *testing.T) {
	require := require.New(t)

	c := NewCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(errOut)
	c.SetArgs([]string{"sign", testCommitment, "--mnemonic=" + testMnemonic, "--print-metrics", "--log-level=off"})
	require.NoError(c.Execute())

	metrics := errOut.String()
	require.Contains(metrics, "# TYPE commitment_signer_signatures counter")
	require.Contains(metrics, "commitment_signer_signatures 1\n")
	require.Contains(metrics, "commitment_signer_sign_duration_count 1\n")
	require.Contains(metrics, fmt.Sprintf("commitment_signer_message_bytes_sum %d\n", len(testCommitment)))
	require.Contains(out.String(), "signature:")

	// Metrics are only written when asked for.
	c = NewCommand()
	errOut.Reset()
	c.SetOut(&bytes.Buffer{})
	c.SetErr(errOut)
	c.SetArgs([]string{"sign", testCommitment, "--mnemonic=" + testMnemonic, "--log-level=off"})
	require.NoError(c.Execute())
	require.Empty(errOut.String())
}

func TestSignRequiresKey(t *testing.T) {
	_, err := run(t, "sign", testCommitment)
	require.Error(t, err) //nolint:forbidigo // error is unexported by config
}

func TestRecoverMalformedSignature(t *testing.T) {
	_, err := run(t, "recover", testCommitment, "0x1234")
	require.ErrorIs(t, err, secp256k1.ErrInvalidSigLen)
}

func TestKeygen(t *testing.T) {
	require := require.New(t)

	generated, err := run(t, "keygen", "--password=password")
	require.NoError(err)

	key, err := secp256k1.NewPrivateKeyFromMnemonic(generated["mnemonic"], "password")
	require.NoError(err)
	require.Equal(key.String(), generated["private key"])
	require.Equal(key.PublicKey().EthAddress().String(), generated["eth address"])
}
