// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package signer defines the capability round logic uses to sign finality
// commitments without depending on a concrete signature scheme.
//
// Schemes are selected at construction time: each scheme is its own type
// implementing Signer for its own Signature type. Whether a message is
// digested before signing is a property of the scheme, not of this contract.
package signer

import "fmt"

// Signature is a value produced by a scheme. Implementations must be value
// types so that copies never alias and == compares the canonical encodings.
// Decoding is scheme specific.
type Signature interface {
	comparable
	fmt.Stringer

	// Bytes returns the canonical encoding of the signature.
	Bytes() []byte
}

// Signer signs opaque messages.
//
// Sign has no error path. Key material is validated when the identity is
// constructed, so a failure of the underlying primitive is a broken
// precondition and causes a panic. Sign must not mutate any shared state and
// is safe to call concurrently.
type Signer[S Signature] interface {
	Sign(msg []byte) S
}
