package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abdorrahmani/curve25519lens/internal/crypto"
)

// GetHMACHashAlgorithm prompts the user for which hash function HMAC
// should run over, or the benchmark sentinel that compares all of them.
func GetHMACHashAlgorithm() string {
	fmt.Println("\nChoose a hash function:")
	fmt.Println("1. SHA-1")
	fmt.Println("2. SHA-256")
	fmt.Println("3. SHA-512")
	fmt.Println("4. BLAKE2b-256")
	fmt.Println("5. BLAKE2b-512")
	fmt.Println("6. Benchmark all")
	fmt.Print("Enter your choice (1-6): ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return crypto.HashSHA256
	}
	choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Println("Invalid input. Please enter a number.")
		return GetHMACHashAlgorithm()
	}

	switch choice {
	case 1:
		return crypto.HashSHA1
	case 2:
		return crypto.HashSHA256
	case 3:
		return crypto.HashSHA512
	case 4:
		return crypto.HashBLAKE2b256
	case 5:
		return crypto.HashBLAKE2b512
	case 6:
		return "benchmark"
	default:
		fmt.Println("Invalid choice. Please try again.")
		return GetHMACHashAlgorithm()
	}
}

// GetPBKDFAlgorithm prompts the user for which key-derivation function
// to run, or the benchmark sentinel that compares all of them.
func GetPBKDFAlgorithm() string {
	fmt.Println("\nChoose a key derivation algorithm:")
	fmt.Println("1. PBKDF2")
	fmt.Println("2. Argon2id")
	fmt.Println("3. Scrypt")
	fmt.Println("4. Benchmark all")
	fmt.Print("Enter your choice (1-4): ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return "pbkdf2"
	}
	choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Println("Invalid input. Please enter a number.")
		return GetPBKDFAlgorithm()
	}

	switch choice {
	case 1:
		return "pbkdf2"
	case 2:
		return "argon2id"
	case 3:
		return "scrypt"
	case 4:
		return "benchmark"
	default:
		fmt.Println("Invalid choice. Please try again.")
		return GetPBKDFAlgorithm()
	}
}
