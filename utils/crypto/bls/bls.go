// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bls implements BLS12-381 signatures with public keys in G1. The
// scheme hashes the message to the curve itself, so signers never apply a
// separate digest step.
package bls

import (
	"crypto/rand"
	"errors"

	blst "github.com/supranational/blst/bindings/go"

	"github.com/ava-labs/commitment-signer/utils/formatting"
)

const (
	SecretKeyLen = blst.BLST_SCALAR_BYTES
	PublicKeyLen = blst.BLST_P1_COMPRESS_BYTES
	SignatureLen = blst.BLST_P2_COMPRESS_BYTES
)

var (
	errFailedSecretKeyDeserialize = errors.New("couldn't deserialize secret key")
	errFailedPublicKeyDecompress  = errors.New("couldn't decompress public key")
	errInvalidPublicKey           = errors.New("invalid public key")
	errFailedSignatureDecompress  = errors.New("couldn't decompress signature")
	errInvalidSignature           = errors.New("invalid signature")

	// More commonly known as G2ProofOfPossession
	ciphersuite = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")
)

type PublicKey = blst.P1Affine

func PublicKeyToCompressedBytes(pk *PublicKey) []byte {
	return pk.Compress()
}

func PublicKeyFromCompressedBytes(pkBytes []byte) (*PublicKey, error) {
	pk := new(PublicKey).Uncompress(pkBytes)
	if pk == nil {
		return nil, errFailedPublicKeyDecompress
	}
	if !pk.KeyValidate() {
		return nil, errInvalidPublicKey
	}
	return pk, nil
}

// Signature is the compressed encoding of a G2 point. It is a value type, so
// copies never alias and == compares encodings.
type Signature [SignatureLen]byte

// SignatureFromBytes parses and validates a compressed signature.
func SignatureFromBytes(sigBytes []byte) (Signature, error) {
	var sig Signature
	if len(sigBytes) != SignatureLen {
		return sig, errFailedSignatureDecompress
	}
	point := new(blst.P2Affine).Uncompress(sigBytes)
	if point == nil {
		return sig, errFailedSignatureDecompress
	}
	if !point.SigValidate(false) {
		return sig, errInvalidSignature
	}
	copy(sig[:], sigBytes)
	return sig, nil
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) String() string {
	str, _ := formatting.Encode(formatting.HexNC, s[:])
	return str
}

// Verify returns true if [sig] is a valid signature of [msg] by [pk].
func Verify(pk *PublicKey, sig Signature, msg []byte) bool {
	point := new(blst.P2Affine).Uncompress(sig[:])
	if point == nil {
		return false
	}
	return point.Verify(true, pk, false, msg, ciphersuite)
}

// LocalSigner holds a secret key in memory.
type LocalSigner struct {
	sk *blst.SecretKey
	pk *PublicKey
}

// NewLocalSigner generates a key from a secure random source.
func NewLocalSigner() (*LocalSigner, error) {
	var ikm [32]byte
	if _, err := rand.Read(ikm[:]); err != nil {
		return nil, err
	}
	sk := blst.KeyGen(ikm[:])
	return newLocalSigner(sk), nil
}

// LocalSignerFromBytes parses a serialized secret key.
func LocalSignerFromBytes(skBytes []byte) (*LocalSigner, error) {
	sk := new(blst.SecretKey).Deserialize(skBytes)
	if sk == nil {
		return nil, errFailedSecretKeyDeserialize
	}
	return newLocalSigner(sk), nil
}

func newLocalSigner(sk *blst.SecretKey) *LocalSigner {
	return &LocalSigner{
		sk: sk,
		pk: new(PublicKey).From(sk),
	}
}

func (s *LocalSigner) PublicKey() *PublicKey {
	return s.pk
}

func (s *LocalSigner) ToBytes() []byte {
	return s.sk.Serialize()
}

// Sign signs [msg] directly; hashing to the curve is part of the scheme.
func (s *LocalSigner) Sign(msg []byte) Signature {
	var sig Signature
	copy(sig[:], new(blst.P2Affine).Sign(s.sk, msg, ciphersuite).Compress())
	return sig
}
