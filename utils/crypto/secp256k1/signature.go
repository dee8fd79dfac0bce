// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"github.com/ava-labs/commitment-signer/utils/formatting"
)

// Signature is a recoverable secp256k1 signature in [r || s || v] format,
// with v in [0, 3]. This is the canonical encoding handed to external
// verifiers.
//
// Signature is a value type: copies never alias and == compares the encodings.
type Signature [SignatureLen]byte

// SignatureFromBytes parses a 65 byte [r || s || v] signature, rejecting
// signatures with a high s value.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if err := verifySECP256K1RSignatureFormat(b); err != nil {
		return sig, err
	}
	copy(sig[:], b)
	return sig, nil
}

// Bytes returns the canonical 65 byte encoding.
func (s Signature) Bytes() []byte {
	return s[:]
}

// R returns the big endian r value.
func (s Signature) R() [32]byte {
	var r [32]byte
	copy(r[:], s[:32])
	return r
}

// S returns the big endian s value.
func (s Signature) S() [32]byte {
	var v [32]byte
	copy(v[:], s[32:64])
	return v
}

// V returns the recovery id.
func (s Signature) V() byte {
	return s[SignatureLen-1]
}

// String returns the 0x prefixed hex encoding.
func (s Signature) String() string {
	str, _ := formatting.Encode(formatting.HexNC, s[:])
	return str
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	b, err := formatting.Decode(formatting.HexNC, string(text))
	if err != nil {
		return err
	}
	parsed, err := SignatureFromBytes(b)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
