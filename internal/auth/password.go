package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Stored password hashes come in three shapes: bcrypt (the primary scheme),
// salted SHA-256 as "salt:hexdigest", and bare SHA-256 hex digests. The two
// SHA-256 forms are legacy imports; a successful verify against either one
// reports that the hash should be upgraded to bcrypt.

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks password against stored and reports whether the
// stored hash uses a legacy scheme and needs rehashing.
func VerifyPassword(stored, password string) (ok bool, needsRehash bool) {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		return err == nil, false
	}

	if salt, digest, found := strings.Cut(stored, ":"); found {
		sum := sha256.Sum256([]byte(salt + password))
		return equalHex(digest, sum[:]), true
	}

	sum := sha256.Sum256([]byte(password))
	return equalHex(stored, sum[:]), true
}

func equalHex(storedHex string, sum []byte) bool {
	want, err := hex.DecodeString(storedHex)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, sum) == 1
}
