package tool

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRandomUUID() string {
	return uuid.New().String()
}

// NewFileID returns the identity assigned to an accepted file item.
func NewFileID() string {
	return GenerateRandomUUID()
}

// NewRunID returns a short alphanumeric ID (8 chars) for simulator runs.
// Shorter than UUID so demo URLs are easier to share and type.
func NewRunID() string {
	b := make([]byte, 4) // 4 bytes = 8 hex chars
	if _, err := rand.Read(b); err != nil {
		return GenerateRandomUUID()[:8] // fallback
	}
	return hex.EncodeToString(b)
}

// LegacyFileID reproduces the timestamp-plus-random-suffix identity scheme
// some hosts persist. Uniqueness is only probabilistic; new code should use
// NewFileID.
func LegacyFileID(now time.Time, randFloat func() float64) string {
	suffix := fmt.Sprintf("%.9f", randFloat())
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix[2:11])
}
