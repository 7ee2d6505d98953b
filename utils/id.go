package utils

import "github.com/google/uuid"

// GenerateID returns a fresh opaque record identifier.
func GenerateID() string {
	return uuid.New().String()
}
