package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation parameters. Iterations is recorded inside each credential,
// so it can be raised later without invalidating stored passwords.
const (
	pbkdf2Iterations = 210000
	saltLength       = 16
	keyLength        = 32
)

// HashPassword derives a credential from a plaintext password using
// PBKDF2-SHA256 with a fresh random salt. The result is encoded as
// "iterations.saltBase64.keyBase64".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyLength, sha256.New)

	return fmt.Sprintf("%d.%s.%s",
		pbkdf2Iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// CheckPassword verifies a candidate password against a stored credential.
// It re-derives the key with the salt and iteration count recorded in the
// credential and compares in constant time. A malformed credential fails
// closed: the function returns false and never panics or errors out to the
// caller. There is no plaintext-equality path.
func CheckPassword(credential, password string) bool {
	iterations, salt, key, err := decodeCredential(credential)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, len(key), sha256.New)
	return subtle.ConstantTimeCompare(derived, key) == 1
}

// decodeCredential splits an "iterations.saltBase64.keyBase64" credential
// into its parts.
func decodeCredential(credential string) (int, []byte, []byte, error) {
	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		return 0, nil, nil, fmt.Errorf("malformed credential: expected 3 parts, got %d", len(parts))
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, fmt.Errorf("malformed credential: bad iteration count %q", parts[0])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return 0, nil, nil, fmt.Errorf("malformed credential: bad salt encoding: %w", err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, fmt.Errorf("malformed credential: bad key encoding")
	}

	return iterations, salt, key, nil
}
