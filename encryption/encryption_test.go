package encryption

import (
	"bytes"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	algorithms := []Algorithm{AlgorithmAESGCM, AlgorithmChaCha20}
	payloads := []struct {
		name      string
		plaintext string
	}{
		{"empty", ""},
		{"json", `{"database":{"password":"s3cret"}}`},
		{"unicode", "こんにちは世界"},
	}

	for _, alg := range algorithms {
		c, err := New("my-secret-key", WithAlgorithm(alg))
		if err != nil {
			t.Fatalf("New(%s) failed: %v", alg, err)
		}
		for _, tc := range payloads {
			t.Run(string(alg)+"/"+tc.name, func(t *testing.T) {
				text, err := SealText(c, []byte(tc.plaintext))
				if err != nil {
					t.Fatalf("SealText failed: %v", err)
				}
				got, err := OpenText(c, []byte(text+"\n"))
				if err != nil {
					t.Fatalf("OpenText failed: %v", err)
				}
				if string(got) != tc.plaintext {
					t.Errorf("expected %q, got %q", tc.plaintext, got)
				}
			})
		}
	}
}

func TestSealUsesFreshNonce(t *testing.T) {
	c, _ := New("key")
	a, _ := c.Seal([]byte("same"))
	b, _ := c.Seal([]byte("same"))
	if bytes.Equal(a, b) {
		t.Error("expected different ciphertexts for the same plaintext")
	}
}

func TestOpenWrongKey(t *testing.T) {
	c1, _ := New("key-one")
	c2, _ := New("key-two")
	text, _ := SealText(c1, []byte("payload"))
	if _, err := OpenText(c2, []byte(text)); err == nil {
		t.Error("expected error with wrong key")
	}
}

func TestOpenInvalidInput(t *testing.T) {
	c, _ := New("key")
	if _, err := OpenText(c, []byte("not base64!!")); err == nil {
		t.Error("expected base64 error")
	}
	if _, err := c.Open([]byte("short")); err == nil {
		t.Error("expected error for short ciphertext")
	}
}

func TestUnsupportedAlgorithm(t *testing.T) {
	if _, err := New("key", WithAlgorithm("rot13")); err == nil {
		t.Error("expected error for unsupported algorithm")
	}
}
