// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// credentialCipher is the private implementation of [CredentialCipher].
type credentialCipher struct {
	masterKey []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewCredentialCipher constructs a [CredentialCipher] keyed by masterKey with
// the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
func NewCredentialCipher(masterKey string) (CredentialCipher, error) {
	if masterKey == "" {
		return nil, ErrEmptyMasterKey
	}

	return &credentialCipher{
		masterKey:    []byte(masterKey),
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}, nil
}

func (c *credentialCipher) deriveKey(salt []byte) []byte {
	return argon2.IDKey(c.masterKey, salt, c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)
}

func (c *credentialCipher) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Encrypt implements [CredentialCipher]. A fresh salt and nonce are drawn
// from the OS CSPRNG for every call.
func (c *credentialCipher) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.gcm(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [CredentialCipher].
func (c *credentialCipher) Decrypt(encoded string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecrypt, err)
	}

	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: blob too short", ErrDecrypt)
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	gcm, err := c.gcm(salt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize+gcm.Overhead() {
		return "", fmt.Errorf("%w: blob too short", ErrDecrypt)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// A tag mismatch here almost always means the master key was rotated.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return string(plaintext), nil
}
