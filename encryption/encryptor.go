package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher seals and opens byte payloads.
type Cipher interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// Algorithm represents supported encryption algorithms.
type Algorithm string

const (
	// AlgorithmAESGCM is AES-256-GCM (default, widely supported).
	AlgorithmAESGCM Algorithm = "aes-256-gcm"

	// AlgorithmChaCha20 is ChaCha20-Poly1305 (fast on CPUs without AES-NI).
	AlgorithmChaCha20 Algorithm = "chacha20-poly1305"
)

// Option configures the cipher.
type Option func(*options)

type options struct {
	algorithm Algorithm
}

// WithAlgorithm selects the encryption algorithm (default: AES-256-GCM).
func WithAlgorithm(alg Algorithm) Option {
	return func(o *options) { o.algorithm = alg }
}

// New creates a Cipher keyed by passphrase.
func New(passphrase string, opts ...Option) (Cipher, error) {
	o := &options{algorithm: AlgorithmAESGCM}
	for _, opt := range opts {
		opt(o)
	}

	key := sha256.Sum256([]byte(passphrase))

	var (
		aead cipher.AEAD
		err  error
	)
	switch o.algorithm {
	case AlgorithmAESGCM:
		var block cipher.Block
		block, err = aes.NewCipher(key[:])
		if err != nil {
			return nil, fmt.Errorf("create cipher: %w", err)
		}
		aead, err = cipher.NewGCM(block)
	case AlgorithmChaCha20:
		aead, err = chacha20poly1305.New(key[:])
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", o.algorithm)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", o.algorithm, err)
	}
	return &aeadCipher{aead: aead}, nil
}

type aeadCipher struct {
	aead cipher.AEAD
}

// Seal encrypts plaintext and returns nonce||ciphertext.
func (c *aeadCipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts nonce||ciphertext.
func (c *aeadCipher) Open(sealed []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, data := sealed[:nonceSize], sealed[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

// SealText seals plaintext and returns it as base64 text.
func SealText(c Cipher, plaintext []byte) (string, error) {
	sealed, err := c.Seal(plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenText opens base64 text produced by SealText. Surrounding whitespace,
// such as a trailing newline in a file, is ignored.
func OpenText(c Cipher, text []byte) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(text)))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return c.Open(sealed)
}
