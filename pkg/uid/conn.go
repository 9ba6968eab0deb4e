package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateConnID generates a random ID for a live renderer connection
func GenerateConnID() (string, error) {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate connection ID: %v", err)
	}
	return hex.EncodeToString(bytes), nil
}
