// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_cipher_mock.go -package=mock

// CredentialCipher protects partner API keys at rest. Only the config loader
// ever sees the plaintext key; it is never logged or returned to callers.
//
// Blob layout (standard base64 of the concatenation):
//
//	salt (16 bytes) ‖ nonce (12 bytes) ‖ AES-256-GCM ciphertext
//
// The AES key is derived from the service master secret and the per-blob
// salt with Argon2id, so rotating the master secret invalidates every blob.
type CredentialCipher interface {
	// Encrypt seals plaintext and returns the base64 blob to store.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a blob produced by Encrypt. Any failure (malformed
	// base64, short blob, authentication-tag mismatch caused by a rotated
	// master secret) wraps [ErrDecrypt].
	Decrypt(blob string) (string, error)
}
