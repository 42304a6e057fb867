package session

import (
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"

	"crypto/sha256"
)

// PassphraseAlgorithm selects the key-derivation function used by
// ScalarFromPassphrase.
type PassphraseAlgorithm string

const (
	PassphrasePBKDF2   PassphraseAlgorithm = "pbkdf2"
	PassphraseArgon2id PassphraseAlgorithm = "argon2id"
	PassphraseScrypt   PassphraseAlgorithm = "scrypt"
)

// PassphraseParams configures ScalarFromPassphrase. It has no
// counterpart in the source, which only ever draws private scalars from
// the CSPRNG; this supplements it for deployments that derive a stable
// identity from a passphrase instead, the way WireGuard and age do.
type PassphraseParams struct {
	Algorithm  PassphraseAlgorithm
	Salt       []byte
	Iterations int    // pbkdf2 iteration count, or argon2id time cost
	Memory     uint32 // argon2id memory cost, in KiB
	Threads    uint8  // argon2id parallelism
}

// ScalarFromPassphrase derives a 32-byte X25519 private scalar from a
// passphrase and salt, then builds the matching key pair. The scalar
// itself is not separately clamped here: curve.X25519 clamps every
// scalar it is given, so the derivation only needs to produce 32
// uniformly distributed bytes.
func ScalarFromPassphrase(passphrase string, params PassphraseParams) (*KeyPair, error) {
	if len(params.Salt) == 0 {
		return nil, fmt.Errorf("session: passphrase derivation requires a salt")
	}

	var scalar []byte
	switch params.Algorithm {
	case PassphrasePBKDF2, "":
		iterations := params.Iterations
		if iterations < 1000 {
			iterations = 100000
		}
		scalar = pbkdf2.Key([]byte(passphrase), params.Salt, iterations, 32, sha256.New)

	case PassphraseArgon2id:
		iterations := uint32(params.Iterations)
		if iterations == 0 {
			iterations = 3
		}
		memory := params.Memory
		if memory == 0 {
			memory = 64 * 1024
		}
		threads := params.Threads
		if threads == 0 {
			threads = 4
		}
		scalar = argon2.IDKey([]byte(passphrase), params.Salt, iterations, memory, threads, 32)

	case PassphraseScrypt:
		n := params.Iterations
		if n < 2 {
			n = 1 << 15
		}
		var err error
		scalar, err = scrypt.Key([]byte(passphrase), params.Salt, n, 8, 1, 32)
		if err != nil {
			return nil, fmt.Errorf("session: scrypt derivation: %w", err)
		}

	default:
		return nil, fmt.Errorf("session: unsupported passphrase algorithm %q", params.Algorithm)
	}

	return keyPairFromScalar(scalar)
}
