package utils

import "math/rand"

// GenerateRandomToken produces a random alphanumeric code. Used to mint a
// pairing code at startup when none is configured.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	token := make([]byte, length)
	for i := range token {
		token[i] = charset[rand.Intn(len(charset))]
	}
	return string(token)
}
