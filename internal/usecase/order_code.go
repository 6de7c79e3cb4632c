package usecase

import "math/rand/v2"

const (
	orderCodePrefix   = "HS-"
	orderCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderCodeLength   = 6
)

// newOrderCode returns a display code such as HS-7KQ2ZD. Codes are random and
// may collide; the order ID remains the key.
func newOrderCode() string {
	b := make([]byte, orderCodeLength)
	for i := range b {
		b[i] = orderCodeAlphabet[rand.IntN(len(orderCodeAlphabet))]
	}
	return orderCodePrefix + string(b)
}
