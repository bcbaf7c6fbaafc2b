package registration

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpLength is the number of digits in a one-time code.
const otpLength = 6

// generateOTP returns a 6-digit numeric code from a cryptographic source.
// Leading zeros are kept, so the code is always exactly six ASCII digits.
func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("could not generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpLength, n), nil
}
