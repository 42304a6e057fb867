package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "curve25519lens-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Test loading non-existent config (should create default)
	configPath := filepath.Join(tempDir, "config.yaml")
	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.X25519.PrivateKeyFile != "x25519_private.bin" {
		t.Errorf("Expected X25519 private key file x25519_private.bin, got %s", config.X25519.PrivateKeyFile)
	}
	if config.Session.KeySize != 128 {
		t.Errorf("Expected session key size 128, got %d", config.Session.KeySize)
	}
	if config.DH.KeySize != 2048 {
		t.Errorf("Expected DH key size 2048, got %d", config.DH.KeySize)
	}
	if config.HMAC.KeySize != 256 {
		t.Errorf("Expected HMAC key size 256, got %d", config.HMAC.KeySize)
	}
	if config.HMAC.HashAlgorithm != "sha256" {
		t.Errorf("Expected HMAC hash algorithm sha256, got %s", config.HMAC.HashAlgorithm)
	}
	if config.PBKDF.Algorithm != "argon2id" {
		t.Errorf("Expected PBKDF algorithm argon2id, got %s", config.PBKDF.Algorithm)
	}
	if config.PBKDF.Iterations != 100000 {
		t.Errorf("Expected PBKDF iterations 100000, got %d", config.PBKDF.Iterations)
	}
	if config.General.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", config.General.LogLevel)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "curve25519lens-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	config := createDefaultConfig()
	configPath := filepath.Join(tempDir, "config.yaml")

	if err := config.Save(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file was not created")
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loadedConfig.X25519.PrivateKeyFile != config.X25519.PrivateKeyFile {
		t.Errorf("X25519 private key file mismatch: got %s, want %s", loadedConfig.X25519.PrivateKeyFile, config.X25519.PrivateKeyFile)
	}
	if loadedConfig.DH.KeySize != config.DH.KeySize {
		t.Errorf("DH key size mismatch: got %d, want %d", loadedConfig.DH.KeySize, config.DH.KeySize)
	}
	if loadedConfig.ChaCha20Poly1305.NonceSize != config.ChaCha20Poly1305.NonceSize {
		t.Errorf("ChaCha20-Poly1305 nonce size mismatch: got %d, want %d", loadedConfig.ChaCha20Poly1305.NonceSize, config.ChaCha20Poly1305.NonceSize)
	}
}

func TestConfigGetters(t *testing.T) {
	config := createDefaultConfig()

	if got := config.GetX25519Config(); got.PrivateKeyFile != config.X25519.PrivateKeyFile {
		t.Errorf("GetX25519Config mismatch: got %s, want %s", got.PrivateKeyFile, config.X25519.PrivateKeyFile)
	}

	if got := config.GetSessionConfig(); got.KeySize != config.Session.KeySize {
		t.Errorf("GetSessionConfig mismatch: got %d, want %d", got.KeySize, config.Session.KeySize)
	}

	if got := config.GetDHConfig(); got.KeySize != config.DH.KeySize {
		t.Errorf("GetDHConfig mismatch: got %d, want %d", got.KeySize, config.DH.KeySize)
	}

	if got := config.GetChaCha20Poly1305Config(); got.KeySize != config.ChaCha20Poly1305.KeySize {
		t.Errorf("GetChaCha20Poly1305Config mismatch: got %d, want %d", got.KeySize, config.ChaCha20Poly1305.KeySize)
	}

	if got := config.GetHMACConfig(); got.KeySize != config.HMAC.KeySize {
		t.Errorf("GetHMACConfig mismatch: got %d, want %d", got.KeySize, config.HMAC.KeySize)
	}

	if got := config.GetPBKDFConfig(); got.Algorithm != config.PBKDF.Algorithm {
		t.Errorf("GetPBKDFConfig mismatch: got %s, want %s", got.Algorithm, config.PBKDF.Algorithm)
	}

	if got := config.GetGeneralConfig(); got.LogLevel != config.General.LogLevel {
		t.Errorf("GetGeneralConfig mismatch: got %s, want %s", got.LogLevel, config.General.LogLevel)
	}
}
