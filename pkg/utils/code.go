package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateSaleNo generates a short human-readable sale code, e.g. "PDV-3F9A21C4".
func GenerateSaleNo() string {
	return "PDV-" + strings.ToUpper(uuid.New().String()[:8])
}
