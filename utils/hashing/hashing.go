// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"

	// This file generates native addresses from public keys with ripemd160.
	// Though ripemd160 is not generally recommended for use, the small size of
	// the public key input is considered harder to attack than larger payloads.
	"golang.org/x/crypto/ripemd160" //nolint:gosec
)

const (
	HashLen = sha256.Size
	AddrLen = ripemd160.Size
)

var ErrInvalidHashLen = errors.New("invalid hash length")

// Hash256 A 256 bit long hash value.
type Hash256 = [HashLen]byte

// Hash160 A 160 bit long hash value.
type Hash160 = [ripemd160.Size]byte

// DigestFunc maps an arbitrary length message to a fixed size digest.
type DigestFunc func([]byte) Hash256

var (
	// Keccak256 is the digest expected by ecrecover based verifiers.
	Keccak256 DigestFunc = ComputeKeccak256Array
	// SHA256 is the digest used by the native protocol.
	SHA256 DigestFunc = ComputeHash256Array
)

// ComputeKeccak256Array computes the legacy Keccak-256 hash of the input byte
// slice. This is the pre-standardization padding used by Ethereum, not
// FIPS-202 SHA3-256.
func ComputeKeccak256Array(buf []byte) Hash256 {
	hasher := sha3.NewLegacyKeccak256()
	// hash.Hash.Write never returns an error.
	_, _ = hasher.Write(buf)

	var h Hash256
	hasher.Sum(h[:0])
	return h
}

// ComputeKeccak256 computes the legacy Keccak-256 hash of the input byte
// slice.
func ComputeKeccak256(buf []byte) []byte {
	arr := ComputeKeccak256Array(buf)
	return arr[:]
}

// ComputeHash256Array computes a cryptographically strong 256 bit hash of the
// input byte slice.
func ComputeHash256Array(buf []byte) Hash256 {
	return sha256.Sum256(buf)
}

// ComputeHash256 computes a cryptographically strong 256 bit hash of the input
// byte slice.
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

// ComputeHash160 computes a cryptographically strong 160 bit hash of the input
// byte slice.
func ComputeHash160(buf []byte) []byte {
	ripe := ripemd160.New() //nolint:gosec
	_, err := io.Writer(ripe).Write(buf)
	if err != nil {
		panic(err)
	}
	return ripe.Sum(nil)
}

// Checksum creates a checksum of [length] bytes from the 256 bit hash of the
// byte slice.
//
// Returns: the lower [length] bytes of the hash
// Panics if length > 32.
func Checksum(bytes []byte, length int) []byte {
	hash := ComputeHash256Array(bytes)
	return hash[len(hash)-length:]
}

func ToHash256(bytes []byte) (Hash256, error) {
	hash := Hash256{}
	if bytesLen := len(bytes); bytesLen != HashLen {
		return hash, fmt.Errorf("%w: expected 32 bytes but got %d", ErrInvalidHashLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}

func ToHash160(bytes []byte) (Hash160, error) {
	hash := Hash160{}
	if bytesLen := len(bytes); bytesLen != AddrLen {
		return hash, fmt.Errorf("%w: expected 20 bytes but got %d", ErrInvalidHashLen, bytesLen)
	}
	copy(hash[:], bytes)
	return hash, nil
}

func PubkeyBytesToAddress(key []byte) []byte {
	return ComputeHash160(ComputeHash256(key))
}
