package crypto

import (
	"bytes"
	"fmt"
	"time"

	"math/big"

	"crypto/rand"

	"github.com/abdorrahmani/curve25519lens/internal/session"
	"github.com/abdorrahmani/curve25519lens/internal/utils"
)

// X25519Processor implements the Processor interface for X25519 key exchange
type X25519Processor struct {
	keyManager KeyManager
}

// NewX25519Processor creates a new X25519 processor
func NewX25519Processor() *X25519Processor {
	return &X25519Processor{
		keyManager: NewFileKeyManager(256, "x25519_private.bin"), // 32 bytes for X25519 private key
	}
}

// Configure configures the X25519 processor with the given settings
func (p *X25519Processor) Configure(config map[string]interface{}) error {
	if privateKeyFile, ok := config["privateKeyFile"].(string); ok {
		p.keyManager = NewFileKeyManager(256, privateKeyFile)
	}
	return nil
}

// Process implements the Processor interface for X25519
func (p *X25519Processor) Process(_ string, _ string) (string, []string, error) {
	v := utils.NewVisualizer()
	startTime := time.Now()

	// Introduction
	v.AddStep("X25519 Key Exchange (Curve25519)")
	v.AddStep("=============================")
	v.AddNote("X25519 is a modern key exchange protocol based on Curve25519")
	v.AddNote("It's designed to be more secure and efficient than classic Diffie-Hellman")
	v.AddNote("Widely used in modern protocols like TLS 1.3, Signal, and WireGuard")
	v.AddSeparator()

	// Add ASCII Diagram
	v.AddStep("Key Exchange Flow:")
	v.AddStep("┌─────────┐                    ┌─────────┐")
	v.AddStep("│  Alice  │                    │   Bob   │")
	v.AddStep("└────┬────┘                    └────┬────┘")
	v.AddStep("     │                               │")
	v.AddStep("     │  PrivKey_A            PrivKey_B│")
	v.AddStep("     │      │                    │    │")
	v.AddStep("     │      v                    v    │")
	v.AddStep("     │  PubKey_A ────────────> PubKey_B")
	v.AddStep("     │      │                    │    │")
	v.AddStep("     │      v                    v    │")
	v.AddStep("     │  SharedSecret_A == SharedSecret_B")
	v.AddStep("     │      │                    │    │")
	v.AddStep("     │      v                    v    │")
	v.AddStep("     │  Session key        Session key")
	v.AddStep("     │      │                    │    │")
	v.AddStep("     │      v                    v    │")
	v.AddStep("     │  Seal/Open          Seal/Open")
	v.AddStep("     │                               │")
	v.AddStep("┌────┴────┐                    ┌────┴────┐")
	v.AddStep("│  Alice  │                    │   Bob   │")
	v.AddStep("└─────────┘                    └─────────┘")
	v.AddSeparator()

	v.AddStep("Legend:")
	v.AddStep("• PrivKey_X: Private scalar (never shared)")
	v.AddStep("• PubKey_X:  Public x-coordinate (exchanged)")
	v.AddStep("• SharedSecret_X: Computed shared secret")
	v.AddStep("• Session key: bytes derived from the shared secret for AEAD")
	v.AddSeparator()

	// Tutorial Section
	v.AddStep("📚 Tutorial: Why X25519 Replaced Classic Diffie-Hellman")
	v.AddStep("=================================================")
	v.AddStep("1. Enhanced Security:")
	v.AddStep("   • Resistant to side-channel attacks")
	v.AddStep("   • Better protection against timing attacks")
	v.AddStep("   • Constant-time operations by design")
	v.AddStep("   • No known practical attacks against Curve25519")
	v.AddStep("   • Smaller attack surface due to simpler implementation")
	v.AddSeparator()

	v.AddStep("2. Implementation Advantages:")
	v.AddStep("   • Designed to prevent common implementation errors")
	v.AddStep("   • No need to validate curve points (built-in safety)")
	v.AddStep("   • Simpler parameter selection (fixed curve)")
	v.AddStep("   • No need to generate or validate prime numbers")
	v.AddStep("   • Reduced risk of weak parameter choices")
	v.AddSeparator()

	v.AddStep("3. Performance Benefits:")
	v.AddStep("   • Faster computation (especially on modern CPUs)")
	v.AddStep("   • Lower power consumption")
	v.AddStep("   • Better performance on embedded devices")
	v.AddStep("   • Smaller key sizes (32 bytes vs 2048+ bits)")
	v.AddStep("   • More efficient for mobile and IoT devices")
	v.AddSeparator()

	v.AddStep("4. Real-World Adoption:")
	v.AddStep("   • TLS 1.3 (replaced DH with X25519)")
	v.AddStep("   • Signal Protocol")
	v.AddStep("   • WireGuard VPN")
	v.AddStep("   • Modern SSH implementations")
	v.AddStep("   • Many other secure messaging apps")
	v.AddSeparator()

	// Step 1: Generate key pairs
	v.AddStep("Step 1: Key Pair Generation")
	v.AddStep("---------------------------")
	alice, err := session.GenerateKeyPair()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate Alice's key pair: %w", err)
	}
	bob, err := session.GenerateKeyPair()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate Bob's key pair: %w", err)
	}
	v.AddStep(fmt.Sprintf("Alice's Private Key: %x", alice.Private))
	v.AddStep(fmt.Sprintf("Bob's Private Key: %x", bob.Private))
	v.AddArrow()

	// Step 2: Public keys
	v.AddStep("Step 2: Public Key Calculation")
	v.AddStep("----------------------------")
	v.AddStep(fmt.Sprintf("Alice's Public Key: %x", alice.Public))
	v.AddStep(fmt.Sprintf("Bob's Public Key: %x", bob.Public))
	v.AddArrow()

	// Step 3: Shared secrets
	v.AddStep("Step 3: Shared Secret Calculation")
	v.AddStep("-------------------------------")
	aliceShared, err := session.DeriveShared(alice.Private, bob.Public)
	if err != nil {
		return "", nil, fmt.Errorf("failed to calculate Alice's shared secret: %w", err)
	}
	bobShared, err := session.DeriveShared(bob.Private, alice.Public)
	if err != nil {
		return "", nil, fmt.Errorf("failed to calculate Bob's shared secret: %w", err)
	}
	v.AddStep(fmt.Sprintf("Alice's Shared Secret: %x", aliceShared))
	v.AddStep(fmt.Sprintf("Bob's Shared Secret: %x", bobShared))
	v.AddArrow()

	// Step 4: Verify shared secrets match
	v.AddStep("Step 4: Shared Secret Verification")
	v.AddStep("--------------------------------")
	if bytes.Equal(aliceShared, bobShared) {
		v.AddStep("✅ Shared secrets match!")
	} else {
		return "", nil, fmt.Errorf("shared secrets do not match")
	}
	v.AddSeparator()

	// Step 5: Session key derivation, legacy and hardened
	v.AddStep("Step 5: Session Key Derivation")
	v.AddStep("---------------------")
	legacyKey := session.SessionKey(aliceShared)
	v.AddStep(fmt.Sprintf("Legacy session key (low 16 bytes of the secret): %x", legacyKey))
	v.AddNote("⚠️  The legacy derivation is kept for compatibility only — it is not a KDF")
	hardenedKey, err := session.HardenedSessionKey(aliceShared, "curve25519lens-demo")
	if err != nil {
		return "", nil, fmt.Errorf("failed to derive hardened session key: %w", err)
	}
	v.AddStep(fmt.Sprintf("Hardened session key (HKDF-SHA256 over the full secret): %x", hardenedKey))
	v.AddSeparator()

	// Step 6: Seal/open with the hardened key
	v.AddStep("Step 6: Using the Session Key for AEAD")
	v.AddStep("-------------------------------------------")
	v.AddNote("Now we'll demonstrate sealing a message under the hardened session key")

	sampleMessage := "Hello, this is a secret message!"
	v.AddStep(fmt.Sprintf("Original Message: %s", sampleMessage))

	sealer, err := session.NewSealer(hardenedKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build sealer: %w", err)
	}
	ciphertext, tag, err := sealer.Seal([]byte(sampleMessage))
	if err != nil {
		return "", nil, fmt.Errorf("failed to seal message: %w", err)
	}
	v.AddHexStep("Ciphertext", ciphertext)
	v.AddHexStep("Tag", tag)

	opener, err := session.NewOpener(hardenedKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build opener: %w", err)
	}
	plaintext, err := opener.Open(ciphertext, tag)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open message: %w", err)
	}
	v.AddStep(fmt.Sprintf("Decrypted Message: %s", string(plaintext)))
	v.AddArrow()

	// Performance Comparison
	v.AddStep("⚡ Performance Comparison")
	v.AddStep("=======================")
	x25519Duration := time.Since(startTime)
	v.AddStep(fmt.Sprintf("X25519 Execution Time: %v", x25519Duration))

	// Measure DH performance without running the full process
	dhStart := time.Now()
	prime := new(big.Int).SetInt64(2)
	prime.Exp(prime, big.NewInt(2048), nil)
	prime.Sub(prime, big.NewInt(1))
	generator := big.NewInt(2)
	alicePrivateDH, _ := rand.Int(rand.Reader, prime)
	bobPrivateDH, _ := rand.Int(rand.Reader, prime)
	alicePublicDH := new(big.Int).Exp(generator, alicePrivateDH, prime)
	bobPublicDH := new(big.Int).Exp(generator, bobPrivateDH, prime)
	_ = new(big.Int).Exp(bobPublicDH, alicePrivateDH, prime) // Calculate shared secret
	_ = new(big.Int).Exp(alicePublicDH, bobPrivateDH, prime) // Calculate shared secret
	dhDuration := time.Since(dhStart)
	v.AddStep(fmt.Sprintf("Classic DH Execution Time: %v", dhDuration))
	v.AddStep(fmt.Sprintf("X25519 is %.2fx faster than Classic DH", float64(dhDuration)/float64(x25519Duration)))
	v.AddSeparator()

	// Explain the process
	v.AddStep("How it works:")
	v.AddStep("1. X25519 establishes a shared secret between Alice and Bob")
	v.AddStep("2. The shared secret is used to derive a session key")
	v.AddStep("3. The session key is used to seal/open messages with AES-128-GCM")
	v.AddStep("4. Both parties can seal/open using the same key, each with its own nonce counter")
	v.AddSeparator()

	// Security Considerations
	v.AddStep("🔒 Security Considerations")
	v.AddStep("========================")
	v.AddStep("1. Key Exchange Security:")
	v.AddStep("   • Curve25519 is designed to be secure by default")
	v.AddStep("   • No need for complex parameter validation")
	v.AddStep("   • Built-in protection against common attacks")
	v.AddStep("   • Constant-time operations prevent timing attacks")
	v.AddSeparator()

	v.AddStep("2. Session Key Derivation:")
	v.AddStep("   • Raw shared secret should never be used directly")
	v.AddStep("   • HKDF provides additional security properties:")
	v.AddStep("     - Key stretching")
	v.AddStep("     - Key separation")
	v.AddStep("     - Key diversification")
	v.AddStep("   • The legacy low-16-bytes derivation above is a cautionary example, not a recommendation")
	v.AddSeparator()

	v.AddStep("3. Best Practices:")
	v.AddStep("   • Use authenticated key exchange (e.g., TLS)")
	v.AddStep("   • Implement perfect forward secrecy")
	v.AddStep("   • Use strong random number generation")
	v.AddStep("   • Regularly rotate keys")
	v.AddStep("   • Never start a sealer's nonce counter at 1 twice under the same key")
	v.AddSeparator()

	v.AddStep("4. Real-World Usage Examples:")
	v.AddStep("   • TLS 1.3 handshake:")
	v.AddStep("     - Server sends certificate")
	v.AddStep("     - Client verifies certificate")
	v.AddStep("     - X25519 key exchange follows")
	v.AddStep("     - All messages authenticated")
	v.AddStep("   • Signal Protocol")
	v.AddStep("   • WireGuard VPN")
	v.AddStep("   • Modern SSH implementations")
	v.AddSeparator()

	// Add TLS 1.3 Connection Section
	v.AddStep("🔐 TLS 1.3 Connection Example")
	v.AddStep("==========================")
	v.AddStep("In TLS 1.3, only modern key exchange algorithms are allowed:")
	v.AddStep("1. X25519 (Curve25519)")
	v.AddStep("2. P-256 (NIST P-256)")
	v.AddStep("3. P-384 (NIST P-384)")
	v.AddStep("4. P-521 (NIST P-521)")
	v.AddStep("5. X448 (Curve448)")
	v.AddStep("6. FFDHE2048 (Finite Field DH)")
	v.AddStep("7. FFDHE3072 (Finite Field DH)")
	v.AddStep("8. FFDHE4096 (Finite Field DH)")
	v.AddSeparator()

	v.AddStep("TLS 1.3 Connection Flow:")
	v.AddStep("1. Client Hello:")
	v.AddStep("   • Supported cipher suites")
	v.AddStep("   • Supported key exchange groups")
	v.AddStep("   • Random nonce")
	v.AddStep("2. Server Hello:")
	v.AddStep("   • Selected cipher suite")
	v.AddStep("   • Selected key exchange group")
	v.AddStep("   • Random nonce")
	v.AddStep("3. Key Exchange:")
	v.AddStep("   • Server's ephemeral public key")
	v.AddStep("   • Server's signature")
	v.AddStep("4. Client Key Exchange:")
	v.AddStep("   • Client's ephemeral public key")
	v.AddStep("5. Finished:")
	v.AddStep("   • Both parties verify the handshake")
	v.AddStep("   • Derive session keys")
	v.AddSeparator()

	v.AddStep("Security Requirements:")
	v.AddStep("1. Perfect Forward Secrecy (PFS)")
	v.AddStep("   • Ephemeral key pairs for each session")
	v.AddStep("   • Keys are never reused")
	v.AddStep("2. Key Exchange Security")
	v.AddStep("   • Must use approved curves")
	v.AddStep("   • Must implement proper validation")
	v.AddStep("3. Authentication")
	v.AddStep("   • Server authentication via certificates")
	v.AddStep("   • Optional client authentication")
	v.AddStep("4. Key Derivation")
	v.AddStep("   • HKDF for key derivation")
	v.AddStep("   • Separate keys for different purposes")
	v.AddSeparator()

	v.AddStep("Production Considerations:")
	v.AddStep("1. Certificate Management")
	v.AddStep("   • Use trusted Certificate Authorities")
	v.AddStep("   • Regular certificate rotation")
	v.AddStep("   • Proper key storage")
	v.AddStep("2. Protocol Configuration")
	v.AddStep("   • Disable legacy protocols")
	v.AddStep("   • Enforce strong cipher suites")
	v.AddStep("   • Configure proper timeouts")
	v.AddStep("3. Monitoring and Logging")
	v.AddStep("   • Track handshake failures")
	v.AddStep("   • Monitor certificate expiration")
	v.AddStep("   • Log security events")
	v.AddSeparator()

	// Add Security Warnings Section
	v.AddStep("⚠️ CRITICAL SECURITY WARNINGS")
	v.AddStep("==========================")
	v.AddStep("1. Authentication is REQUIRED:")
	v.AddStep("   • X25519 is ONLY for key exchange")
	v.AddStep("   • MUST be combined with authentication")
	v.AddStep("   • Common authentication methods:")
	v.AddStep("     - Digital signatures (RSA, ECDSA)")
	v.AddStep("     - TLS certificates")
	v.AddStep("     - Pre-shared keys")
	v.AddStep("   • Without authentication, vulnerable to MITM attacks")
	v.AddStep("   • Example: TLS 1.3 uses X25519 + certificates")
	v.AddSeparator()

	v.AddStep("2. Implementation Security:")
	v.AddStep("   • MUST use constant-time implementation")
	v.AddStep("   • Curve25519 is designed for constant-time operations")
	v.AddStep("   • cswap here is the textbook XOR-mask form, not the tightened bitwise one")
	v.AddStep("   • Avoid side-channel attacks:")
	v.AddStep("     - Timing attacks")
	v.AddStep("     - Power analysis")
	v.AddStep("     - Cache attacks")
	v.AddSeparator()

	v.AddStep("3. Key Management:")
	v.AddStep("   • Generate private keys securely")
	v.AddStep("   • Never reuse private keys")
	v.AddStep("   • Use proper key derivation (HKDF)")
	v.AddStep("   • Store private keys securely")
	v.AddStep("   • Implement key rotation")
	v.AddSeparator()

	v.AddStep("4. Common Pitfalls:")
	v.AddStep("   • Using X25519 without authentication")
	v.AddStep("   • Reusing private keys")
	v.AddStep("   • Implementing custom curve arithmetic without review")
	v.AddStep("   • Using non-constant-time operations")
	v.AddStep("   • Skipping key validation")
	v.AddStep("   • Not using proper key derivation")
	v.AddSeparator()

	v.AddStep("5. Best Practices:")
	v.AddStep("   • Always use authenticated key exchange")
	v.AddStep("   • Use constant-time implementations")
	v.AddStep("   • Implement proper key validation")
	v.AddStep("   • Use secure random number generation")
	v.AddStep("   • Follow protocol specifications exactly")
	v.AddStep("   • Regular security audits")
	v.AddSeparator()

	// Final result
	result := "Successfully demonstrated X25519 key exchange and AEAD sealing"
	return result, v.GetSteps(), nil
}

