package session

import (
	"bytes"
	"testing"
	"time"
)

func TestKeyPairRoundTripAgreement(t *testing.T) {
	// S7: two parties generate key pairs, exchange public values, and
	// derive equal shared secrets.
	alice, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair (alice): %v", err)
	}
	bob, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair (bob): %v", err)
	}

	aliceSecret, err := DeriveShared(alice.Private, bob.Public)
	if err != nil {
		t.Fatalf("DeriveShared (alice): %v", err)
	}
	bobSecret, err := DeriveShared(bob.Private, alice.Public)
	if err != nil {
		t.Fatalf("DeriveShared (bob): %v", err)
	}
	if !bytes.Equal(aliceSecret, bobSecret) {
		t.Fatalf("shared secrets differ: %x vs %x", aliceSecret, bobSecret)
	}

	aliceKey := SessionKey(aliceSecret)
	bobKey := SessionKey(bobSecret)

	sealer, err := NewSealer(aliceKey)
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	opener, err := NewOpener(bobKey)
	if err != nil {
		t.Fatalf("NewOpener: %v", err)
	}

	ciphertext, tag, err := sealer.Seal([]byte("Hello bob"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	plaintext, err := opener.Open(ciphertext, tag)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(plaintext) != "Hello bob" {
		t.Errorf("recovered plaintext = %q, want %q", plaintext, "Hello bob")
	}
}

func TestOpenDetectsTamperedCiphertext(t *testing.T) {
	key := make([]byte, 16)
	sealer, _ := NewSealer(key)
	opener, _ := NewOpener(key)

	ciphertext, tag, err := sealer.Seal([]byte("attack at dawn"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	ciphertext[0] ^= 0xFF

	if _, err := opener.Open(ciphertext, tag); err != ErrAuthFailure {
		t.Errorf("Open with tampered ciphertext returned %v, want ErrAuthFailure", err)
	}
}

func TestOpenDetectsTamperedTag(t *testing.T) {
	key := make([]byte, 16)
	sealer, _ := NewSealer(key)
	opener, _ := NewOpener(key)

	ciphertext, tag, err := sealer.Seal([]byte("attack at dawn"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	tag[0] ^= 0xFF

	if _, err := opener.Open(ciphertext, tag); err != ErrAuthFailure {
		t.Errorf("Open with tampered tag returned %v, want ErrAuthFailure", err)
	}
}

func TestNonceSequenceStartsAtOne(t *testing.T) {
	seq := NewNonceSequence()
	_, nonce := seq.advance()
	want := [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	if nonce != want {
		t.Errorf("first nonce = %x, want %x", nonce, want)
	}
}

func TestSealerAdvancesCounterPerMessage(t *testing.T) {
	key := make([]byte, 16)
	sealer, _ := NewSealer(key)
	opener, _ := NewOpener(key)

	for i := 0; i < 3; i++ {
		ct, tag, err := sealer.Seal([]byte("msg"))
		if err != nil {
			t.Fatalf("Seal %d: %v", i, err)
		}
		pt, err := opener.Open(ct, tag)
		if err != nil {
			t.Fatalf("Open %d: %v", i, err)
		}
		if string(pt) != "msg" {
			t.Errorf("Open %d returned %q", i, pt)
		}
	}
}

func TestHardenedSessionKeyDiffersFromLegacy(t *testing.T) {
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = byte(i)
	}
	legacy := SessionKey(secret)
	hardened, err := HardenedSessionKey(secret, "test")
	if err != nil {
		t.Fatalf("HardenedSessionKey: %v", err)
	}
	if bytes.Equal(legacy, hardened) {
		t.Error("hardened session key should differ from the legacy low-16-bytes derivation")
	}
}

func TestScalarFromPassphraseIsDeterministic(t *testing.T) {
	params := PassphraseParams{
		Algorithm:  PassphrasePBKDF2,
		Salt:       []byte("fixed-salt-for-test"),
		Iterations: 1000,
	}
	kp1, err := ScalarFromPassphrase("correct horse battery staple", params)
	if err != nil {
		t.Fatalf("ScalarFromPassphrase: %v", err)
	}
	kp2, err := ScalarFromPassphrase("correct horse battery staple", params)
	if err != nil {
		t.Fatalf("ScalarFromPassphrase: %v", err)
	}
	if !bytes.Equal(kp1.Public, kp2.Public) {
		t.Error("same passphrase and salt should yield the same key pair")
	}
}

func TestScalarFromPassphraseRequiresSalt(t *testing.T) {
	_, err := ScalarFromPassphrase("no salt here", PassphraseParams{})
	if err == nil {
		t.Error("ScalarFromPassphrase should reject an empty salt")
	}
}

func TestConfirmTranscriptAgreement(t *testing.T) {
	secret := []byte("shared-secret-bytes-32-long-xxx")
	transcript := []byte("alice-pub||bob-pub")

	tagA, err := ConfirmTranscript(secret, transcript, TranscriptSHA256)
	if err != nil {
		t.Fatalf("ConfirmTranscript: %v", err)
	}
	ok, err := VerifyTranscript(secret, transcript, tagA, TranscriptSHA256)
	if err != nil {
		t.Fatalf("VerifyTranscript: %v", err)
	}
	if !ok {
		t.Error("VerifyTranscript should accept a tag computed from the same secret and transcript")
	}

	ok, err = VerifyTranscript([]byte("different-secret-bytes-32-longx"), transcript, tagA, TranscriptSHA256)
	if err != nil {
		t.Fatalf("VerifyTranscript: %v", err)
	}
	if ok {
		t.Error("VerifyTranscript should reject a tag computed under a different secret")
	}
}

func TestIssueAndVerifyTicket(t *testing.T) {
	alice, _ := GenerateKeyPair()
	bob, _ := GenerateKeyPair()
	secret, _ := DeriveShared(alice.Private, bob.Public)

	ticket, err := IssueTicket(secret, alice.Public, bob.Public, time.Hour)
	if err != nil {
		t.Fatalf("IssueTicket: %v", err)
	}

	claims, err := VerifyTicket(secret, ticket)
	if err != nil {
		t.Fatalf("VerifyTicket: %v", err)
	}
	if claims.LocalPublic == "" || claims.PeerPublic == "" {
		t.Error("ticket claims should carry both public values")
	}

	otherSecret, _ := DeriveShared(bob.Private, alice.Public)
	if _, err := VerifyTicket(otherSecret, ticket); err != nil {
		t.Errorf("VerifyTicket with the peer-derived (equal) secret should succeed: %v", err)
	}

	wrongSecret := make([]byte, 32)
	if _, err := VerifyTicket(wrongSecret, ticket); err == nil {
		t.Error("VerifyTicket should reject a ticket signed under a different secret")
	}
}

func TestZeroize(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zeroize(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("byte %d = %d, want 0", i, v)
		}
	}
}
