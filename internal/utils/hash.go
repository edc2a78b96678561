package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. A stored record is
// base64(salt) + "." + base64(derived key); changing any of these values
// invalidates every previously stored record.
const (
	saltLength       = 16
	derivedKeyLength = 32
	pbkdf2Iterations = 10000

	hashRecordSeparator = "."
	hashRecordParts     = 2
)

// HashPassword derives a salted hash record from a plaintext password.
//
// It draws a 16-byte salt from crypto/rand, derives a 32-byte key with
// PBKDF2-HMAC-SHA256 over 10000 iterations, and encodes both parts as
// base64 joined by a dot:
//
//	<base64(salt)>.<base64(key)>
//
// Returns an error only if the system random source fails.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, derivedKeyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(salt) +
		hashRecordSeparator +
		base64.StdEncoding.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches the stored hash record.
//
// The record is split into its salt and expected-key parts, the key is
// re-derived with the same parameters as [HashPassword], and the two keys
// are compared in constant time.
//
// Malformed records — wrong part count or invalid base64 — verify to false;
// this function never returns an error.
func VerifyPassword(password, hashRecord string) bool {
	parts := strings.Split(hashRecord, hashRecordSeparator)
	if len(parts) != hashRecordParts {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}

	expectedKey, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, derivedKeyLength, sha256.New)

	return hmac.Equal(key, expectedKey)
}
