package curve

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"
)

func TestX25519StrictRFC7748OneIteration(t *testing.T) {
	// RFC 7748 section 5.2: scalarmult(9, 9) after one iteration.
	u := make([]byte, ScalarSize)
	u[0] = 9
	got, err := X25519Strict(u, u)
	if err != nil {
		t.Fatalf("X25519Strict returned error: %v", err)
	}
	want, err := hex.DecodeString("422c8e7a6227d7bca1350b3e2bb7279f7897b87bb6854b783c60e80311ae3079")
	if err != nil {
		t.Fatalf("failed to decode expected vector: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("X25519Strict(9, 9) = %x, want %x", got, want)
	}
}

func TestX25519IteratedSelfTest(t *testing.T) {
	// S6: starting with k = u = 9, the loop (k, u) <- (X25519(k, u), k)
	// repeated 300 times yields a fixed value. This is a different
	// iteration count from RFC 7748's own published checkpoints (1,
	// 1000, 1,000,000), so it is not expected to match those; it is
	// its own self-test value, unrelated to the source's inert
	// re-decode step (see the X25519 doc comment).
	k := make([]byte, ScalarSize)
	k[0] = 9
	u := make([]byte, ScalarSize)
	u[0] = 9

	for i := 0; i < 300; i++ {
		next, err := X25519(k, u)
		if err != nil {
			t.Fatalf("iteration %d: X25519 returned error: %v", i, err)
		}
		u = k
		k = next
	}

	want, err := hex.DecodeString("ab01f96be0469f1978174ca1519d0328c40930be793551548917dd2e624ce612")
	if err != nil {
		t.Fatalf("failed to decode expected vector: %v", err)
	}
	if !bytes.Equal(k, want) {
		t.Errorf("after 300 iterations k = %x, want %x", k, want)
	}
}

func TestDHAgreement(t *testing.T) {
	base := make([]byte, ScalarSize)
	base[0] = 9

	a := make([]byte, ScalarSize)
	b := make([]byte, ScalarSize)
	if _, err := rand.Read(a); err != nil {
		t.Fatal(err)
	}
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}

	aPub, err := X25519(a, base)
	if err != nil {
		t.Fatal(err)
	}
	bPub, err := X25519(b, base)
	if err != nil {
		t.Fatal(err)
	}

	s1, err := X25519(a, bPub)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := X25519(b, aPub)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(s1, s2) {
		t.Errorf("X25519(a, X25519(b, 9)) = %x, want %x", s1, s2)
	}
}

func TestClampScalarBits(t *testing.T) {
	k := make([]byte, ScalarSize)
	for i := range k {
		k[i] = 0xFF
	}
	kInt := ClampScalar(DecodeLittleEndian(k))
	if kInt.Bit(0) != 0 || kInt.Bit(1) != 0 || kInt.Bit(2) != 0 {
		t.Error("clamp did not clear the low three bits")
	}
	if kInt.Bit(255) != 0 {
		t.Error("clamp did not clear bit 255")
	}
	if kInt.Bit(254) != 1 {
		t.Error("clamp did not set bit 254")
	}
}

func TestRoundTripEncodeDecode(t *testing.T) {
	b := make([]byte, ScalarSize)
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}
	n := DecodeLittleEndian(b)
	got := EncodeLittleEndian(n)
	if !bytes.Equal(b, got) {
		t.Errorf("round trip mismatch: got %x, want %x", got, b)
	}
}

func TestX25519RejectsShortInput(t *testing.T) {
	short := make([]byte, 16)
	full := make([]byte, ScalarSize)
	if _, err := X25519(short, full); err == nil {
		t.Error("X25519 should reject a scalar shorter than 32 bytes")
	}
	if _, err := X25519(full, short); err == nil {
		t.Error("X25519 should reject a u-coordinate shorter than 32 bytes")
	}
}
