// Package session exposes the ergonomic operations built on top of the
// X25519 ladder: key-pair generation, shared-secret derivation, session
// key material, and AEAD sealing/opening. It mirrors the shape of the
// original Rust source's crypto module, including the low-16-bytes
// legacy session key, while adding a hardened HKDF alternative, a
// PBKDF-derived scalar path, HMAC transcript confirmation, and JWT
// session tickets.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/abdorrahmani/curve25519lens/internal/curve"
	"golang.org/x/crypto/hkdf"
)

// BasePoint is the Curve25519 base point u-coordinate, encoded as 32
// little-endian bytes.
var BasePoint = func() []byte {
	b := make([]byte, curve.ScalarSize)
	b[0] = 9
	return b
}()

// KeyPair holds an X25519 private scalar and its corresponding public
// value, both as 32-byte little-endian arrays.
type KeyPair struct {
	Private []byte
	Public  []byte
}

// GenerateKeyPair draws 32 uniformly random bytes as the private scalar
// and computes the matching public value against the base point.
func GenerateKeyPair() (*KeyPair, error) {
	priv := make([]byte, curve.ScalarSize)
	if _, err := rand.Read(priv); err != nil {
		return nil, fmt.Errorf("session: generate key pair: %w", err)
	}
	return keyPairFromScalar(priv)
}

// keyPairFromScalar builds a KeyPair from an already-chosen private
// scalar, used both by GenerateKeyPair and ScalarFromPassphrase.
func keyPairFromScalar(priv []byte) (*KeyPair, error) {
	pub, err := curve.X25519(priv, BasePoint)
	if err != nil {
		return nil, fmt.Errorf("session: derive public key: %w", err)
	}
	return &KeyPair{Private: priv, Public: pub}, nil
}

// DeriveShared computes the X25519 shared secret between a local
// private scalar and a peer's public value.
func DeriveShared(priv, peerPublic []byte) ([]byte, error) {
	secret, err := curve.X25519(priv, peerPublic)
	if err != nil {
		return nil, fmt.Errorf("session: derive shared secret: %w", err)
	}
	return secret, nil
}

// SessionKey returns the low 16 bytes of the shared secret's
// little-endian encoding. This is the legacy derivation preserved from
// the source; it is not a KDF and should not be relied on for new
// deployments — see HardenedSessionKey.
func SessionKey(secret []byte) []byte {
	key := make([]byte, 16)
	copy(key, secret[:16])
	return key
}

// HardenedSessionKey derives a 16-byte AES-128 key from the full
// 32-byte shared secret via HKDF-SHA256, with info used to
// domain-separate this derivation from any other use of the same
// secret. This is the hardened alternative that the legacy SessionKey's
// doc comment points to.
func HardenedSessionKey(secret []byte, info string) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte(info))
	key := make([]byte, 16)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("session: hkdf expand: %w", err)
	}
	return key, nil
}

// Zeroize overwrites b with zeros in place. Callers should call this on
// private scalars, shared secrets, and session keys once they are no
// longer needed; the source this package was ported from does not do
// this.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
