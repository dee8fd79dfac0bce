// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"errors"

	"github.com/cosmos/go-bip39"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/ava-labs/commitment-signer/utils/hashing"
)

// 128 bits of entropy results in a 12 word mnemonic.
const mnemonicEntropyBits = 128

var errInvalidMnemonic = errors.New("invalid mnemonic")

// GenerateWithPhrase generates a fresh mnemonic and returns the key derived
// from it and [password].
func GenerateWithPhrase(password string) (*PrivateKey, string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return nil, "", err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, "", err
	}
	key, err := NewPrivateKeyFromMnemonic(mnemonic, password)
	return key, mnemonic, err
}

// NewPrivateKeyFromMnemonic deterministically derives a key from a BIP-39
// [mnemonic] and [password]. The same pair always yields the same key.
func NewPrivateKeyFromMnemonic(mnemonic, password string) (*PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errInvalidMnemonic
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, err
	}
	return privateKeyFromSeed(seed), nil
}

// privateKeyFromSeed hashes [seed] until the digest is a valid scalar. The
// probability of needing more than one round is below 2^-127.
func privateKeyFromSeed(seed []byte) *PrivateKey {
	digest := hashing.ComputeHash256Array(seed)
	for {
		var scalar secp256k1.ModNScalar
		if overflow := scalar.SetBytes(&digest); overflow == 0 && !scalar.IsZero() {
			return newPrivateKey(secp256k1.NewPrivateKey(&scalar))
		}
		digest = hashing.ComputeHash256Array(digest[:])
	}
}
