package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// GenerateAccessCode returns an 8-character uppercase token like A9K2Q7XZ,
// taken from the hex form of a random UUID.
func GenerateAccessCode() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:])[:8])
}
