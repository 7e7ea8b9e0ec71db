package service

import "crypto/rand"

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// generateRedemptionCode draws a code from crypto/rand over a 62-symbol
// alphabet. Uniqueness is still enforced by the database constraint; the
// generator only has to make collisions negligibly rare.
func generateRedemptionCode(length int) (string, error) {
	code := make([]byte, 0, length)
	// Rejection sampling keeps the distribution uniform over the alphabet.
	limit := byte(256 - 256%len(codeAlphabet))
	buf := make([]byte, length*2)
	for len(code) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			code = append(code, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(code) == length {
				break
			}
		}
	}
	return string(code), nil
}
