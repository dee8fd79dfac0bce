// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ava-labs/commitment-signer/cache"
	"github.com/ava-labs/commitment-signer/cache/lru"
	"github.com/ava-labs/commitment-signer/utils/formatting"
	"github.com/ava-labs/commitment-signer/utils/hashing"
)

const (
	// SignatureLen is the number of bytes in a secp2561k recoverable signature
	SignatureLen = 65

	// PrivateKeyLen is the number of bytes in a secp2561k recoverable private
	// key
	PrivateKeyLen = 32

	// PublicKeyLen is the number of bytes in a secp2561k recoverable public
	// key
	PublicKeyLen = 33

	// from the decred library:
	// compactSigMagicOffset is a value used when creating the compact signature
	// recovery code inherited from Bitcoin and has no meaning, but has been
	// retained for compatibility.  For historical purposes, it was originally
	// picked to avoid a binary representation that would allow compact
	// signatures to be mistaken for other components.
	compactSigMagicOffset = 27

	PrivateKeyPrefix = "PrivateKey-"
	nullStr          = "null"
)

var (
	ErrInvalidSigLen = errors.New("invalid signature length")
	ErrMutatedSig    = errors.New("signature was mutated from its original format")
	ErrRecoverFailed = errors.New("failed to recover public key")

	errInvalidPrivateKeyLen = errors.New("invalid private key length")
	errInvalidPrivateKey    = errors.New("private key is not a valid secp256k1 scalar")
	errInvalidPublicKeyLen  = errors.New("invalid public key length")
	errInvalidRecoveryCode  = errors.New("invalid recovery code")
	errCompressed           = errors.New("wasn't expecting a compressed key")
	errMissingQuotes        = errors.New("first and last characters should be quotes")
	errMissingKeyPrefix     = fmt.Errorf("private key missing %s prefix", PrivateKeyPrefix)
)

// RecoverCache recovers public keys from signatures, remembering recent
// results.
type RecoverCache struct {
	cache cache.Cacher[hashing.Hash256, *PublicKey]
}

// NewRecoverCache returns a RecoverCache holding at most [size] public keys.
// If [size] is not positive, nothing is remembered.
func NewRecoverCache(size int) *RecoverCache {
	if size <= 0 {
		return &RecoverCache{
			cache: &cache.Empty[hashing.Hash256, *PublicKey]{},
		}
	}
	return &RecoverCache{
		cache: lru.NewCache[hashing.Hash256, *PublicKey](size),
	}
}

// RecoverPublicKeyFromHash recovers the public key that produced [sig] over
// the 32 byte [hash].
func (r *RecoverCache) RecoverPublicKeyFromHash(hash, sig []byte) (*PublicKey, error) {
	cacheBytes := make([]byte, len(hash)+len(sig))
	copy(cacheBytes, hash)
	copy(cacheBytes[len(hash):], sig)
	id := hashing.ComputeHash256Array(cacheBytes)
	if cachedPublicKey, ok := r.cache.Get(id); ok {
		return cachedPublicKey, nil
	}

	pubkey, err := RecoverPublicKeyFromHash(hash, sig)
	if err != nil {
		return nil, err
	}

	r.cache.Put(id, pubkey)
	return pubkey, nil
}

// RecoverPublicKeyFromHash recovers the public key that produced the
// [r || s || v] formatted [sig] over the 32 byte [hash].
func RecoverPublicKeyFromHash(hash, sig []byte) (*PublicKey, error) {
	if len(hash) != hashing.HashLen {
		return nil, fmt.Errorf("%w: expected 32 bytes but got %d", hashing.ErrInvalidHashLen, len(hash))
	}
	if err := verifySECP256K1RSignatureFormat(sig); err != nil {
		return nil, err
	}

	rawSig, err := sigToRawSig(sig)
	if err != nil {
		return nil, err
	}

	rawPubkey, compressed, err := ecdsa.RecoverCompact(rawSig, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecoverFailed, err)
	}

	if compressed {
		return nil, errCompressed
	}
	return newPublicKey(rawPubkey), nil
}

// PublicKey is immutable after construction and safe for concurrent use.
type PublicKey struct {
	pk      *secp256k1.PublicKey
	bytes   []byte
	addr    hashing.Hash160
	ethAddr EthAddress
}

func newPublicKey(pk *secp256k1.PublicKey) *PublicKey {
	bytes := pk.SerializeCompressed()
	addr, _ := hashing.ToHash160(hashing.PubkeyBytesToAddress(bytes))
	k := &PublicKey{
		pk:    pk,
		bytes: bytes,
		addr:  addr,
	}
	k.ethAddr = PublicKeyToEthAddress(k)
	return k
}

// ToPublicKey parses a compressed or uncompressed public key.
func ToPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyLen && len(b) != 65 {
		return nil, errInvalidPublicKeyLen
	}
	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return newPublicKey(key), nil
}

// Verify verifies [sig] was produced over the SHA-256 hash of [msg], the
// native protocol convention.
func (k *PublicKey) Verify(msg, sig []byte) bool {
	return k.VerifyHash(hashing.ComputeHash256(msg), sig)
}

// VerifyHash verifies [sig] was produced by this key over [hash].
func (k *PublicKey) VerifyHash(hash, sig []byte) bool {
	pk, err := RecoverPublicKeyFromHash(hash, sig)
	if err != nil {
		return false
	}
	return k.pk.IsEqual(pk.pk)
}

// Address returns the native protocol address of this key.
func (k *PublicKey) Address() hashing.Hash160 {
	return k.addr
}

// EthAddress returns the address an ecrecover based verifier derives for this
// key.
func (k *PublicKey) EthAddress() EthAddress {
	return k.ethAddr
}

// Bytes returns the 33 byte compressed encoding of the key.
func (k *PublicKey) Bytes() []byte {
	return k.bytes
}

// UncompressedBytes returns the 65 byte uncompressed encoding of the key.
func (k *PublicKey) UncompressedBytes() []byte {
	return k.pk.SerializeUncompressed()
}

// Equal returns true if both keys are the same point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && k.pk.IsEqual(other.pk)
}

// PrivateKey is the signing identity. It is immutable after construction, so
// any number of goroutines may sign with the same key concurrently.
type PrivateKey struct {
	sk    *secp256k1.PrivateKey
	pk    *PublicKey
	bytes []byte
}

// NewPrivateKey generates a new private key from a secure random source.
func NewPrivateKey() (*PrivateKey, error) {
	k, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return newPrivateKey(k), nil
}

// ToPrivateKey parses a 32 byte big endian scalar. Zero and scalars that
// overflow the group order are rejected.
func ToPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, errInvalidPrivateKeyLen
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, errInvalidPrivateKey
	}
	return newPrivateKey(secp256k1.NewPrivateKey(&scalar)), nil
}

func newPrivateKey(sk *secp256k1.PrivateKey) *PrivateKey {
	return &PrivateKey{
		sk:    sk,
		pk:    newPublicKey(sk.PubKey()),
		bytes: sk.Serialize(),
	}
}

func (k *PrivateKey) PublicKey() *PublicKey {
	return k.pk
}

func (k *PrivateKey) Address() hashing.Hash160 {
	return k.pk.Address()
}

// Sign signs the SHA-256 hash of [msg]. This is the native protocol entry
// point; ecrecover based verifiers can not verify its output against [msg].
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	return k.SignHash(hashing.ComputeHash256(msg))
}

// SignHash signs exactly the 32 byte [hash] without hashing it again. The
// nonce is derived from the key and hash (RFC6979), so signing is
// deterministic.
//
// Returns the signature in [r || s || v] format, with a low s value.
func (k *PrivateKey) SignHash(hash []byte) ([]byte, error) {
	if len(hash) != hashing.HashLen {
		return nil, fmt.Errorf("%w: expected 32 bytes but got %d", hashing.ErrInvalidHashLen, len(hash))
	}
	sig := ecdsa.SignCompact(k.sk, hash, false) // returns [v || r || s]
	return rawSigToSig(sig)
}

// Bytes returns the 32 byte scalar of this key.
func (k *PrivateKey) Bytes() []byte {
	return k.bytes
}

func (k *PrivateKey) String() string {
	// We assume that the maximum size of a byte slice that
	// can be stringified is at least the length of a SECP256K1 private key
	keyStr, _ := formatting.Encode(formatting.CB58, k.Bytes())
	return PrivateKeyPrefix + keyStr
}

// ToPrivateKeyString is the inverse of PrivateKey.String().
func ToPrivateKeyString(str string) (*PrivateKey, error) {
	if !strings.HasPrefix(str, PrivateKeyPrefix) {
		return nil, errMissingKeyPrefix
	}
	keyBytes, err := formatting.Decode(formatting.CB58, strings.TrimPrefix(str, PrivateKeyPrefix))
	if err != nil {
		return nil, err
	}
	return ToPrivateKey(keyBytes)
}

func (k *PrivateKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

func (k *PrivateKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PrivateKey) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	} else if len(str) < 2 {
		return errMissingQuotes
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}
	return k.UnmarshalText([]byte(str[1:lastIndex]))
}

func (k *PrivateKey) UnmarshalText(text []byte) error {
	parsed, err := ToPrivateKeyString(string(text))
	if err != nil {
		return err
	}
	*k = *parsed
	return nil
}

// raw sig has format [v || r || s] whereas the sig has format [r || s || v]
func rawSigToSig(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLen {
		return nil, ErrInvalidSigLen
	}
	recCode := sig[0]
	copy(sig, sig[1:])
	sig[SignatureLen-1] = recCode - compactSigMagicOffset
	return sig, nil
}

// sig has format [r || s || v] whereas the raw sig has format [v || r || s]
func sigToRawSig(sig []byte) ([]byte, error) {
	if len(sig) != SignatureLen {
		return nil, ErrInvalidSigLen
	}
	newSig := make([]byte, SignatureLen)
	newSig[0] = sig[SignatureLen-1] + compactSigMagicOffset
	copy(newSig[1:], sig)
	return newSig, nil
}

// verifies the signature format in format [r || s || v]
func verifySECP256K1RSignatureFormat(sig []byte) error {
	if len(sig) != SignatureLen {
		return ErrInvalidSigLen
	}

	// Only uncompressed recovery codes are produced by SignHash.
	if sig[SignatureLen-1] > 3 {
		return errInvalidRecoveryCode
	}

	var s secp256k1.ModNScalar
	s.SetByteSlice(sig[32:64])
	if s.IsOverHalfOrder() {
		return ErrMutatedSig
	}
	return nil
}
