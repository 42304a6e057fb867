package session

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// TranscriptHash selects the hash function underlying ConfirmTranscript.
type TranscriptHash string

const (
	TranscriptSHA1       TranscriptHash = "sha1"
	TranscriptSHA256     TranscriptHash = "sha256"
	TranscriptSHA512     TranscriptHash = "sha512"
	TranscriptBLAKE2b256 TranscriptHash = "blake2b-256"
)

// ConfirmTranscript computes an HMAC over a key-exchange transcript
// (conventionally the two parties' public values, concatenated in a
// fixed order) keyed by the shared secret. Both parties can compute
// this independently and compare tags out of band to confirm they
// derived the same secret without revealing it. The source has no
// equivalent of this step.
func ConfirmTranscript(secret, transcript []byte, which TranscriptHash) ([]byte, error) {
	newHash, err := hashConstructor(which)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(newHash, secret)
	mac.Write(transcript)
	return mac.Sum(nil), nil
}

// VerifyTranscript recomputes the transcript tag and compares it to tag
// using a constant-time comparison.
func VerifyTranscript(secret, transcript, tag []byte, which TranscriptHash) (bool, error) {
	expected, err := ConfirmTranscript(secret, transcript, which)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(expected, tag) == 1, nil
}

func hashConstructor(which TranscriptHash) (func() hash.Hash, error) {
	switch which {
	case TranscriptSHA1:
		return sha1.New, nil
	case TranscriptSHA256, "":
		return sha256.New, nil
	case TranscriptSHA512:
		return sha512.New, nil
	case TranscriptBLAKE2b256:
		return func() hash.Hash {
			h, _ := blake2b.New256(nil)
			return h
		}, nil
	default:
		return nil, fmt.Errorf("session: unsupported transcript hash %q", which)
	}
}
