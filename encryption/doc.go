// Package encryption seals and opens configuration files with a passphrase.
//
// Sealed files hold base64 text of nonce||ciphertext produced by an AEAD
// cipher. AES-256-GCM is the default; ChaCha20-Poly1305 suits hosts without
// AES hardware acceleration. The passphrase is hashed with SHA-256 to derive
// the 32-byte key.
//
// # Usage
//
//	c, err := encryption.New(os.Getenv("CONFIG_KEY"))
//	text, err := encryption.SealText(c, plaintext)
//	plaintext, err := encryption.OpenText(c, text)
//
// The decode package wraps OpenText as a file decoder.
package encryption
