// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// EthAddress is the 20 byte account identifier an ecrecover based verifier
// derives from a public key. String renders the EIP-55 checksummed form.
type EthAddress = common.Address

// ToECDSA returns the key in the form expected by go-ethereum.
func (k *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return k.pk.ToECDSA()
}

// PublicKeyToEthAddress returns the address derived from [pk].
func PublicKeyToEthAddress(pk *PublicKey) EthAddress {
	return ethcrypto.PubkeyToAddress(*pk.ToECDSA())
}
