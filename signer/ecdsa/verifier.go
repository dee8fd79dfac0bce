// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecdsa

import (
	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/hashing"
)

// Verifier checks signatures with the same convention an ecrecover based
// verifier uses.
type Verifier struct {
	recoverer *secp256k1.RecoverCache
	digest    hashing.DigestFunc
}

// NewVerifier returns a Verifier that remembers up to [cacheSize] recovered
// public keys.
func NewVerifier(cacheSize int) *Verifier {
	return &Verifier{
		recoverer: secp256k1.NewRecoverCache(cacheSize),
		digest:    hashing.Keccak256,
	}
}

// Recover returns the public key that signed [msg].
func (v *Verifier) Recover(msg []byte, sig secp256k1.Signature) (*secp256k1.PublicKey, error) {
	digest := v.digest(msg)
	return v.recoverer.RecoverPublicKeyFromHash(digest[:], sig[:])
}

// RecoverEthAddress returns the address ecrecover yields for [msg] and [sig].
func (v *Verifier) RecoverEthAddress(msg []byte, sig secp256k1.Signature) (secp256k1.EthAddress, error) {
	pk, err := v.Recover(msg, sig)
	if err != nil {
		return secp256k1.EthAddress{}, err
	}
	return pk.EthAddress(), nil
}

// Verify returns true if [sig] is [pk]'s signature of [msg].
func (v *Verifier) Verify(pk *secp256k1.PublicKey, msg []byte, sig secp256k1.Signature) bool {
	recovered, err := v.Recover(msg, sig)
	return err == nil && pk.Equal(recovered)
}
