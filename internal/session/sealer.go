package session

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrAuthFailure is returned by Open when the AEAD tag does not verify.
// No plaintext is returned in this case.
var ErrAuthFailure = errors.New("session: authentication failure")

const (
	nonceSize = 12
	tagSize   = 16
)

// NonceSequence is a pure value carrying the next monotonic counter for
// an AES-GCM nonce: 8 zero bytes followed by a 4-byte big-endian
// counter. It mirrors the source's IvNonceSequence, which starts its
// counter at 1 and increments on every advance.
type NonceSequence struct {
	counter uint32
}

// NewNonceSequence returns a sequence whose first advance() yields
// counter value 1, matching the source.
func NewNonceSequence() NonceSequence {
	return NonceSequence{counter: 0}
}

// advance returns the next 12-byte nonce and the sequence state after
// incrementing the counter. It does not mutate its receiver; the
// sealer holds the returned sequence for the following call.
func (n NonceSequence) advance() (NonceSequence, [nonceSize]byte) {
	n.counter++
	var nonce [nonceSize]byte
	binary.BigEndian.PutUint32(nonce[8:], n.counter)
	return n, nonce
}

// Sealer encrypts successive messages under one AES-128-GCM key,
// advancing its nonce counter each call. A Sealer must not be reused
// across more messages than its counter can uniquely address, and must
// never be recreated with counter 1 under the same key once any
// message has been sealed — see the attacks package for what happens
// when that rule is violated.
type Sealer struct {
	aead  cipher.AEAD
	nonce NonceSequence
}

// NewSealer builds a Sealer over a 16-byte AES-128 key, with its nonce
// counter starting at the source's default of 1.
func NewSealer(key []byte) (*Sealer, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead, nonce: NewNonceSequence()}, nil
}

// Seal encrypts plaintext under the next nonce in the sequence,
// returning ciphertext and its authentication tag separately. Ciphertext
// length equals plaintext length; associated data is always empty.
func (s *Sealer) Seal(plaintext []byte) (ciphertext, tag []byte, err error) {
	var nonce [nonceSize]byte
	s.nonce, nonce = s.nonce.advance()
	sealed := s.aead.Seal(nil, nonce[:], plaintext, nil)
	return sealed[:len(sealed)-tagSize], sealed[len(sealed)-tagSize:], nil
}

// Opener decrypts successive messages under one AES-128-GCM key,
// advancing its nonce counter in lockstep with the peer's Sealer.
type Opener struct {
	aead  cipher.AEAD
	nonce NonceSequence
}

// NewOpener builds an Opener over a 16-byte AES-128 key, with its nonce
// counter starting at 1 to match NewSealer.
func NewOpener(key []byte) (*Opener, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	return &Opener{aead: aead, nonce: NewNonceSequence()}, nil
}

// Open decrypts ciphertext and verifies tag under the next nonce in the
// sequence. It returns ErrAuthFailure itself, with no plaintext, if the
// tag does not verify.
func (o *Opener) Open(ciphertext, tag []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	o.nonce, nonce = o.nonce.advance()
	sealed := append(append([]byte{}, ciphertext...), tag...)
	plaintext, err := o.aead.Open(nil, nonce[:], sealed, nil)
	if err != nil {
		return nil, ErrAuthFailure
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != 16 {
		return nil, fmt.Errorf("session: AES-128-GCM requires a 16-byte key, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("session: new AES cipher: %w", err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("session: new GCM: %w", err)
	}
	return aead, nil
}
