package utils

import (
	rndm "math/rand"
	"net/http"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/globals"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// --- Request Helpers ---

// GetUserIDFromRequest returns the user id stashed in the request context
// by the auth middleware, or "" when the caller is anonymous.
func GetUserIDFromRequest(r *http.Request) string {
	if v, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return v
	}
	return ""
}
