package utils

import (
	"crypto/rand"
	"fmt"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderID generates a checkout order identifier in the format ORD-XXXXXX
func GenerateOrderID() (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	code := make([]byte, len(bytes))
	for i, b := range bytes {
		code[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}

	return constants.OrderIDPrefix + string(code), nil
}
