package utils

import "github.com/google/uuid"

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateEventUID yields a fresh identity for a calendar entry. Feeds are
// replaced wholesale on every fetch, so entries are never diffed across
// compilations and a random UID is sufficient.
func GenerateEventUID() string {
	return uuid.NewString()
}
