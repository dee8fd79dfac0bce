// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"encoding/hex"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestKeccak256Vectors(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		expected string
	}{
		{
			name:     "empty",
			in:       []byte{},
			expected: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			name:     "nil",
			in:       nil,
			expected: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			name:     "abc",
			in:       []byte("abc"),
			expected: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			hash := Keccak256(test.in)
			require.Equal(test.expected, hex.EncodeToString(hash[:]))
			require.Equal(hash[:], ComputeKeccak256(test.in))
		})
	}
}

func TestKeccak256IsNotSHA256(t *testing.T) {
	require := require.New(t)

	msg := []byte("this is a beefy commitment")
	require.NotEqual(Keccak256(msg), SHA256(msg))
	require.Equal(
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(ComputeHash256(nil)),
	)
}

func TestKeccak256Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("deterministic", prop.ForAll(
		func(msg []byte) bool {
			return Keccak256(msg) == Keccak256(append([]byte{}, msg...))
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("single bit flip changes the digest", prop.ForAll(
		func(msg []byte, index uint, bit uint8) bool {
			if len(msg) == 0 {
				return true
			}
			flipped := append([]byte{}, msg...)
			flipped[int(index%uint(len(msg)))] ^= 1 << (bit % 8)

			original := Keccak256(msg)
			changed := Keccak256(flipped)
			differing := 0
			for i := range original {
				if original[i] != changed[i] {
					differing++
				}
			}
			// A 32 byte digest with fewer than half its bytes changed would
			// indicate no avalanche at all.
			return differing > HashLen/2
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestToHash256(t *testing.T) {
	require := require.New(t)

	_, err := ToHash256(make([]byte, HashLen-1))
	require.ErrorIs(err, ErrInvalidHashLen)

	hash := Keccak256([]byte{1, 2, 3})
	parsed, err := ToHash256(hash[:])
	require.NoError(err)
	require.Equal(hash, parsed)
}
