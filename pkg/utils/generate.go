package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

// ValidRequestID accepts caller supplied ids only when they are UUIDs.
func ValidRequestID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
