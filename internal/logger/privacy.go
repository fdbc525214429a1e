package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

var hashSalt string

// InitHashSalt loads the log hashing salt. In production set LOG_HASH_SALT;
// the default is only acceptable for local development.
func InitHashSalt() {
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// HashBusinessID creates a privacy-preserving hash of a business reference.
// Tax records are sensitive; log lines carry the hash, never the reference.
func HashBusinessID(businessID string) string {
	data := fmt.Sprintf("%s:%s", businessID, hashSalt)
	hash := sha256.Sum256([]byte(data))
	// First 8 characters are enough to correlate log lines.
	return hex.EncodeToString(hash[:])[:8]
}
