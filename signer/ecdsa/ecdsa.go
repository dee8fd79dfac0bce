// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ecdsa signs commitments so that ecrecover based verifiers accept
// them: the message is hashed with Keccak-256 and the digest is signed with a
// recoverable secp256k1 signature.
package ecdsa

import (
	"errors"
	"fmt"

	"github.com/ava-labs/commitment-signer/signer"
	"github.com/ava-labs/commitment-signer/utils/crypto/secp256k1"
	"github.com/ava-labs/commitment-signer/utils/hashing"
)

var (
	_ signer.Signer[secp256k1.Signature] = (*Signer)(nil)
	_ Identity                           = (*secp256k1.PrivateKey)(nil)

	ErrSigningFailed = errors.New("identity failed to sign digest")
)

// Identity signs a 32 byte digest as is, returning a recoverable signature in
// [r || s || v] format.
type Identity interface {
	SignHash(hash []byte) ([]byte, error)
}

// Signer hashes messages with its digest function and signs the digest with
// its identity.
type Signer struct {
	identity Identity
	digest   hashing.DigestFunc
}

// New returns a Signer that signs Keccak-256 digests with [identity].
func New(identity Identity) *Signer {
	return NewWithDigest(identity, hashing.Keccak256)
}

// NewWithDigest returns a Signer that uses [digest] in place of Keccak-256.
// Signatures it produces are only accepted by verifiers using the same digest.
func NewWithDigest(identity Identity, digest hashing.DigestFunc) *Signer {
	return &Signer{
		identity: identity,
		digest:   digest,
	}
}

// Digest returns the value that Sign passes to the identity for [msg].
func (s *Signer) Digest(msg []byte) hashing.Hash256 {
	return s.digest(msg)
}

// Sign returns the identity's signature over the digest of [msg].
//
// The digest is handed to the identity's pre-hashed entry point. Signing
// [msg] through an entry point that hashes again would still produce a valid
// looking signature, but one external verifiers reject.
//
// Panics if the identity fails to sign or returns a malformed signature.
func (s *Signer) Sign(msg []byte) secp256k1.Signature {
	digest := s.digest(msg)
	sigBytes, err := s.identity.SignHash(digest[:])
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrSigningFailed, err))
	}
	sig, err := secp256k1.SignatureFromBytes(sigBytes)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrSigningFailed, err))
	}
	return sig
}
