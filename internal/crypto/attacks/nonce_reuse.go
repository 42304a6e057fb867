package attacks

import (
	"encoding/base64"
	"fmt"

	"github.com/abdorrahmani/curve25519lens/internal/session"
	"github.com/abdorrahmani/curve25519lens/internal/utils"
)

// NonceReuseProcessor demonstrates what happens when two session
// sealers are built over the same AES-128-GCM key. Both start their
// nonce counter at 1, so their first sealed message collides on the
// exact same 12-byte nonce under the same key — the one precondition
// a counter-based sealer must never violate.
type NonceReuseProcessor struct {
	*BaseProcessor
	config *AttackConfig
}

// NewNonceReuseProcessor creates a new nonce reuse attack processor
func NewNonceReuseProcessor() *NonceReuseProcessor {
	return &NonceReuseProcessor{
		BaseProcessor: NewBaseProcessor(),
		config:        NewAttackConfig(),
	}
}

// Configure configures the nonce reuse processor
func (p *NonceReuseProcessor) Configure(config map[string]interface{}) error {
	if keySize, ok := config["keySize"].(int); ok {
		if keySize != 128 {
			return fmt.Errorf("invalid key size: %d (must be 128 bits for the session sealer)", keySize)
		}
		p.config.KeySize = keySize
	}
	return nil
}

// Process demonstrates the nonce reuse vulnerability against two
// session.Sealer instances sharing a key
func (p *NonceReuseProcessor) Process(text string, operation string) (string, []string, error) {
	p.addIntroduction()

	secondMessage := p.getSecondMessage()
	p.addInputInfo(text, secondMessage)

	key, err := p.initializeSharedKey()
	if err != nil {
		return "", nil, err
	}

	ciphertext1, ciphertext2, tag1, tag2, err := p.sealBothMessagesUnderSharedKey(key, text, secondMessage)
	if err != nil {
		return "", nil, err
	}

	p.demonstrateAttack(ciphertext1, ciphertext2)
	p.addSecurityImplications()

	result := fmt.Sprintf("Ciphertext 1: %s (tag %s)\nCiphertext 2: %s (tag %s)",
		base64.StdEncoding.EncodeToString(ciphertext1), base64.StdEncoding.EncodeToString(tag1),
		base64.StdEncoding.EncodeToString(ciphertext2), base64.StdEncoding.EncodeToString(tag2))

	return result, p.GetSteps(), nil
}

func (p *NonceReuseProcessor) addIntroduction() {
	p.AddStep("🔒 Nonce Reuse Under a Shared Session Key")
	p.AddStep("============================")
	p.AddNote("A session.Sealer's nonce counter always starts at 1")
	p.AddNote("Two sealers built over the same 16-byte key both start there too")
	p.AddNote("Their first sealed message shares the exact same nonce")
	p.AddSeparator()
}

func (p *NonceReuseProcessor) getSecondMessage() string {
	p.AddStep("Step 1: Message Collection")
	p.AddStep("----------------------")
	fmt.Printf("\n%s", utils.DefaultTheme.Format("Enter a second message to seal under the same session key: ", "brightGreen"))
	var secondMessage string
	if _, err := fmt.Scanln(&secondMessage); err != nil {
		secondMessage = "This is a different message sealed under the same key!"
	}
	if secondMessage == "" {
		secondMessage = "This is a different message sealed under the same key!"
	}
	return secondMessage
}

func (p *NonceReuseProcessor) addInputInfo(text, secondMessage string) {
	p.AddTextStep("First Message", text)
	p.AddHexStep("Plaintext 1 (hex)", []byte(text))
	p.AddArrow()
	p.AddTextStep("Second Message", secondMessage)
	p.AddHexStep("Plaintext 2 (hex)", []byte(secondMessage))
	p.AddArrow()

	p.AddStep("XOR of Plaintexts (P1 ⊕ P2):")
	ptXored := xorBytes([]byte(text), []byte(secondMessage))
	p.AddHexStep("Plaintext XOR Result", ptXored)
	p.AddStep("Note: Non-zero bytes show where the messages differ!")
	p.AddArrow()
}

func (p *NonceReuseProcessor) initializeSharedKey() ([]byte, error) {
	p.AddStep("Step 2: Shared Key Setup")
	p.AddStep("---------------------------")
	key := make([]byte, 16)
	for i := range key {
		key[i] = byte(i * 7)
	}
	p.AddStep("⚠️ WARNING: reusing one AES-128-GCM key across two independently")
	p.AddStep("created sealers, each starting its own counter at 1")
	p.AddHexStep("Shared Key", key)
	p.AddArrow()
	return key, nil
}

func (p *NonceReuseProcessor) sealBothMessagesUnderSharedKey(key []byte, text, secondMessage string) (ct1, ct2, tag1, tag2 []byte, err error) {
	p.AddStep("Step 3: Sealing Under Two Independent Sealers")
	p.AddStep("----------------")

	sealerA, err := session.NewSealer(key)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to build first sealer: %w", err)
	}
	sealerB, err := session.NewSealer(key)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to build second sealer: %w", err)
	}

	ct1, tag1, err = sealerA.Seal([]byte(text))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to seal first message: %w", err)
	}
	ct2, tag2, err = sealerB.Seal([]byte(secondMessage))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to seal second message: %w", err)
	}

	p.AddHexStep("First Ciphertext", ct1)
	p.AddArrow()
	p.AddHexStep("Second Ciphertext", ct2)
	p.AddArrow()

	return ct1, ct2, tag1, tag2, nil
}

func (p *NonceReuseProcessor) demonstrateAttack(ciphertext1, ciphertext2 []byte) {
	p.AddStep("Step 4: Nonce Reuse Attack")
	p.AddStep("----------------------")
	p.AddStep("Both sealers produced nonce 0x000000000000000000000001")
	p.AddStep("1. The keystream is identical for both messages")
	p.AddStep("2. XORing the ciphertexts reveals the XOR of the plaintexts")
	p.AddStep("3. This can lead to partial or complete plaintext recovery")
	p.AddArrow()

	xored := xorBytes(ciphertext1, ciphertext2)
	p.AddStep("XOR of Ciphertexts:")
	p.AddHexStep("Ciphertext XOR Result", xored)
	p.AddStep("Note: The XOR of ciphertexts matches the XOR of plaintexts!")
	p.AddStep("This is because: C1 ⊕ C2 = (P1 ⊕ KS) ⊕ (P2 ⊕ KS) = P1 ⊕ P2")
	p.AddArrow()

	p.addTechnicalExplanation()
}

func (p *NonceReuseProcessor) addTechnicalExplanation() {
	p.AddStep("🧠 Why This Works:")
	p.AddStep("================")
	p.AddStep("AES-GCM = CTR-mode stream cipher + GHASH MAC")
	p.AddStep("If (key, nonce) is reused:")
	p.AddStep("• Same key + nonce → same keystream (KS)")
	p.AddStep("• C1 = M1 ⊕ KS")
	p.AddStep("• C2 = M2 ⊕ KS")
	p.AddStep("→ XOR(C1, C2) = M1 ⊕ M2")
	p.AddStep("")
	p.AddStep("This is exactly what happens whenever a new Sealer is created")
	p.AddStep("over a key that a prior Sealer already used — both start")
	p.AddStep("their counter at 1, so the very first message collides.")
	p.AddSeparator()
}

func (p *NonceReuseProcessor) addSecurityImplications() {
	p.AddStep("🔒 Security Implications")
	p.AddStep("======================")
	p.AddStep("1. Nonce reuse in AEAD ciphers is catastrophic")
	p.AddStep("2. The same (key, nonce) pair produces identical keystream")
	p.AddStep("3. This allows attackers to:")
	p.AddStep("   • Recover plaintext through XOR operations")
	p.AddStep("   • Forge valid ciphertexts")
	p.AddStep("   • Break confidentiality completely")
	p.AddStep("4. Authentication tags become meaningless")
	p.AddStep("5. The entire security model collapses")

	p.AddStep("✅ Best Practices")
	p.AddStep("===============")
	p.AddStep("1. Never build more than one Sealer over the same session key")
	p.AddStep("2. Derive a fresh session key per exchange (see HardenedSessionKey)")
	p.AddStep("3. If a key must be reused, derive per-message subkeys instead")
	p.AddStep("4. Track sealer lifetime explicitly; never reconstruct one mid-session")
	p.AddStep("5. Prefer ephemeral keys with forward secrecy")
}

// xorBytes performs XOR operation on two byte slices
func xorBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	result := make([]byte, n)
	for i := range result {
		var b1, b2 byte
		if i < len(a) {
			b1 = a[i]
		}
		if i < len(b) {
			b2 = b[i]
		}
		result[i] = b1 ^ b2
	}
	return result
}
