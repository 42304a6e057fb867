package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// X25519 configuration
	X25519 struct {
		PrivateKeyFile string `yaml:"privateKeyFile"`
	} `yaml:"x25519"`

	// Session configuration (AES-128-GCM sealer/opener over the shared secret)
	Session struct {
		KeySize       int    `yaml:"keySize"`
		TicketTTL     int    `yaml:"ticketTTLSeconds"`
		TranscriptAlg string `yaml:"transcriptHash"`
	} `yaml:"session"`

	// DH configuration (classic, non-curve baseline for comparison)
	DH struct {
		KeySize        int    `yaml:"keySize"`
		Generator      int    `yaml:"generator"`
		PrimeFile      string `yaml:"primeFile"`
		PrivateKeyFile string `yaml:"privateKeyFile"`
		PublicKeyFile  string `yaml:"publicKeyFile"`
	} `yaml:"dh"`

	// ChaCha20-Poly1305 configuration
	ChaCha20Poly1305 struct {
		KeySize   int    `yaml:"keySize"`
		KeyFile   string `yaml:"keyFile"`
		NonceSize int    `yaml:"nonceSize"`
		TagSize   int    `yaml:"tagSize"`
	} `yaml:"chacha20poly1305"`

	// PBKDF configuration
	PBKDF struct {
		Algorithm  string `yaml:"algorithm"`
		Iterations int    `yaml:"iterations"`
		Memory     uint32 `yaml:"memory"`
		Threads    uint8  `yaml:"threads"`
		KeyLength  uint32 `yaml:"keyLength"`
	} `yaml:"pbkdf"`

	// HMAC configuration
	HMAC struct {
		KeySize       int    `yaml:"keySize"`
		KeyFile       string `yaml:"keyFile"`
		HashAlgorithm string `yaml:"hashAlgorithm"`
	} `yaml:"hmac"`

	// General settings
	General struct {
		LogLevel string `yaml:"logLevel"`
		Debug    bool   `yaml:"debug"`
	} `yaml:"general"`
}

// LoadConfig loads the configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// If no config path is provided, use default
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".curve25519lens", "config.yaml")
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create default config
		config := createDefaultConfig()
		if err := config.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to the specified file
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default configuration
func createDefaultConfig() *Config {
	config := &Config{}

	config.X25519.PrivateKeyFile = "x25519_private.bin"

	config.Session.KeySize = 128
	config.Session.TicketTTL = 300
	config.Session.TranscriptAlg = "sha256"

	config.DH.KeySize = 2048
	config.DH.Generator = 2
	config.DH.PrimeFile = "dh_prime.bin"
	config.DH.PrivateKeyFile = "dh_private.bin"
	config.DH.PublicKeyFile = "dh_public.bin"

	config.ChaCha20Poly1305.KeySize = 256
	config.ChaCha20Poly1305.KeyFile = "chacha20poly1305_key.bin"
	config.ChaCha20Poly1305.NonceSize = 12
	config.ChaCha20Poly1305.TagSize = 16

	config.PBKDF.Algorithm = "argon2id"
	config.PBKDF.Iterations = 100000
	config.PBKDF.Memory = 64 * 1024
	config.PBKDF.Threads = 4
	config.PBKDF.KeyLength = 32

	config.HMAC.KeySize = 256
	config.HMAC.KeyFile = "hmac_key.bin"
	config.HMAC.HashAlgorithm = "sha256"

	config.General.LogLevel = "info"
	config.General.Debug = false

	return config
}

// GetX25519Config returns the X25519 configuration
func (c *Config) GetX25519Config() struct {
	PrivateKeyFile string `yaml:"privateKeyFile"`
} {
	return c.X25519
}

// GetSessionConfig returns the session layer configuration
func (c *Config) GetSessionConfig() struct {
	KeySize       int    `yaml:"keySize"`
	TicketTTL     int    `yaml:"ticketTTLSeconds"`
	TranscriptAlg string `yaml:"transcriptHash"`
} {
	return c.Session
}

// GetDHConfig returns the classic DH configuration
func (c *Config) GetDHConfig() struct {
	KeySize        int    `yaml:"keySize"`
	Generator      int    `yaml:"generator"`
	PrimeFile      string `yaml:"primeFile"`
	PrivateKeyFile string `yaml:"privateKeyFile"`
	PublicKeyFile  string `yaml:"publicKeyFile"`
} {
	return c.DH
}

// GetChaCha20Poly1305Config returns the ChaCha20-Poly1305 configuration
func (c *Config) GetChaCha20Poly1305Config() struct {
	KeySize   int    `yaml:"keySize"`
	KeyFile   string `yaml:"keyFile"`
	NonceSize int    `yaml:"nonceSize"`
	TagSize   int    `yaml:"tagSize"`
} {
	return c.ChaCha20Poly1305
}

// GetPBKDFConfig returns the PBKDF configuration
func (c *Config) GetPBKDFConfig() struct {
	Algorithm  string `yaml:"algorithm"`
	Iterations int    `yaml:"iterations"`
	Memory     uint32 `yaml:"memory"`
	Threads    uint8  `yaml:"threads"`
	KeyLength  uint32 `yaml:"keyLength"`
} {
	return c.PBKDF
}

// GetHMACConfig returns the HMAC configuration
func (c *Config) GetHMACConfig() struct {
	KeySize       int    `yaml:"keySize"`
	KeyFile       string `yaml:"keyFile"`
	HashAlgorithm string `yaml:"hashAlgorithm"`
} {
	return c.HMAC
}

// GetGeneralConfig returns the general configuration
func (c *Config) GetGeneralConfig() struct {
	LogLevel string `yaml:"logLevel"`
	Debug    bool   `yaml:"debug"`
} {
	return c.General
}
