package cli

import "github.com/abdorrahmani/curve25519lens/internal/crypto"

const (
	// AppVersion is the current version of the application
	AppVersion = "v1.3.0"
)

const (
	// Menu options
	OptionX25519 = iota + 1
	OptionDH
	OptionChaCha20Poly1305
	OptionHMAC
	OptionPBKDF
	OptionExit
)

// MenuOption represents a menu option with its configuration
type MenuOption struct {
	ID            int
	Name          string
	Description   string
	SkipOperation bool // Whether to skip operation selection (encrypt/decrypt)
}

// GetMenuOptions returns all available menu options
func GetMenuOptions() []MenuOption {
	return []MenuOption{
		{ID: OptionX25519, Name: "X25519 Key Exchange", Description: "Curve25519 Diffie-Hellman and session sealing", SkipOperation: true},
		{ID: OptionDH, Name: "Classic Diffie-Hellman", Description: "Modular-exponentiation baseline for comparison", SkipOperation: true},
		{ID: OptionChaCha20Poly1305, Name: "ChaCha20-Poly1305", Description: "Alternate AEAD construction"},
		{ID: OptionHMAC, Name: "HMAC Authentication", Description: "Hash-based message authentication and transcript confirmation"},
		{ID: OptionPBKDF, Name: "Password-Based Key Derivation", Description: "Key and X25519 identity derivation from a passphrase"},
		{ID: OptionExit, Name: "Exit", Description: "Exit the program"},
	}
}

// GetSkipOperationOptions returns a map of options that should skip operation selection
func GetSkipOperationOptions() map[int]bool {
	return map[int]bool{
		OptionX25519: true,
		OptionDH:     true,
		OptionHMAC:   true,
		OptionPBKDF:  true,
	}
}

// GetDefaultOperation returns the default operation for a given option
func GetDefaultOperation(_ int) string {
	return crypto.OperationEncrypt
}
