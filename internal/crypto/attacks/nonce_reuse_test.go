package attacks

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestNonceReuseProcessor_Configure(t *testing.T) {
	tests := []struct {
		name        string
		config      map[string]interface{}
		wantErr     bool
		description string
	}{
		{
			name: "valid key size",
			config: map[string]interface{}{
				"keySize": 128,
			},
			wantErr:     false,
			description: "should accept 128-bit key size",
		},
		{
			name: "invalid key size",
			config: map[string]interface{}{
				"keySize": 256,
			},
			wantErr:     true,
			description: "should reject non-128-bit key size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewNonceReuseProcessor()
			err := p.Configure(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("NonceReuseProcessor.Configure() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNonceReuseProcessor_Process(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		operation   string
		wantErr     bool
		description string
	}{
		{
			name:        "empty text",
			text:        "",
			operation:   "encrypt",
			wantErr:     false,
			description: "should handle empty text",
		},
		{
			name:        "short text",
			text:        "Hello",
			operation:   "encrypt",
			wantErr:     false,
			description: "should handle short text",
		},
		{
			name:        "long text",
			text:        "This is a longer text that will be sealed under the same key",
			operation:   "encrypt",
			wantErr:     false,
			description: "should handle long text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewNonceReuseProcessor()
			if err := p.Configure(map[string]interface{}{"keySize": 128}); err != nil {
				t.Fatalf("failed to configure processor: %v", err)
			}

			result, steps, err := p.Process(tt.text, tt.operation)
			if (err != nil) != tt.wantErr {
				t.Errorf("NonceReuseProcessor.Process() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if len(result) == 0 {
					t.Error("expected non-empty result")
				}
				if len(steps) == 0 {
					t.Error("expected non-empty steps")
				}

				parts := strings.Split(result, "\n")
				if len(parts) != 2 {
					t.Error("expected two lines in result")
				}

				for _, part := range parts {
					base64Part := strings.TrimPrefix(part, "Ciphertext 1: ")
					base64Part = strings.TrimPrefix(base64Part, "Ciphertext 2: ")
					if idx := strings.Index(base64Part, " (tag "); idx != -1 {
						base64Part = base64Part[:idx]
					}
					base64Part = strings.TrimSpace(base64Part)

					if _, err := base64.StdEncoding.DecodeString(base64Part); err != nil {
						t.Errorf("result contains invalid base64: %v", err)
					}
				}
			}
		})
	}
}

func TestNonceReuseProcessor_XorBytes(t *testing.T) {
	tests := []struct {
		name        string
		a           []byte
		b           []byte
		want        []byte
		description string
	}{
		{
			name:        "equal length",
			a:           []byte{1, 2, 3},
			b:           []byte{4, 5, 6},
			want:        []byte{5, 7, 5},
			description: "should XOR bytes of equal length",
		},
		{
			name:        "a longer than b",
			a:           []byte{1, 2, 3, 4},
			b:           []byte{5, 6},
			want:        []byte{4, 4, 3, 4},
			description: "should handle a longer than b",
		},
		{
			name:        "b longer than a",
			a:           []byte{1, 2},
			b:           []byte{3, 4, 5, 6},
			want:        []byte{2, 6, 5, 6},
			description: "should handle b longer than a",
		},
		{
			name:        "empty inputs",
			a:           []byte{},
			b:           []byte{},
			want:        []byte{},
			description: "should handle empty inputs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := xorBytes(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Errorf("xorBytes() length = %v, want %v", len(got), len(tt.want))
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("xorBytes()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNonceReuseProcessor_RevealsXOR(t *testing.T) {
	p := NewNonceReuseProcessor()
	if err := p.Configure(map[string]interface{}{"keySize": 128}); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	key, err := p.initializeSharedKey()
	if err != nil {
		t.Fatalf("initializeSharedKey: %v", err)
	}

	msg1 := "attack at dawn"
	msg2 := "retreat at noon"
	ct1, ct2, _, _, err := p.sealBothMessagesUnderSharedKey(key, msg1, msg2)
	if err != nil {
		t.Fatalf("sealBothMessagesUnderSharedKey: %v", err)
	}

	gotXOR := xorBytes(ct1, ct2)
	wantXOR := xorBytes([]byte(msg1), []byte(msg2))
	if len(gotXOR) != len(wantXOR) {
		t.Fatalf("ciphertext XOR length = %d, want %d", len(gotXOR), len(wantXOR))
	}
	for i := range gotXOR {
		if gotXOR[i] != wantXOR[i] {
			t.Errorf("ciphertext XOR byte %d = %#x, want %#x (nonce reuse should leak the plaintext XOR)", i, gotXOR[i], wantXOR[i])
		}
	}
}
