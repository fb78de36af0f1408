package reservation

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dworin/KidAirlines/internal/domain"
)

const (
	confirmationCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	confirmationLength  = 6
)

// GenerateConfirmationNumber returns a 6-character code drawn uniformly
// from A-Z0-9. Codes are not unique by construction; the store's unique
// constraint is the collision guard and Create retries on it.
func GenerateConfirmationNumber() string {
	charsetLen := big.NewInt(int64(len(confirmationCharset)))
	buf := make([]byte, confirmationLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			panic(fmt.Sprintf("confirmation number entropy: %v", err))
		}
		buf[i] = confirmationCharset[n.Int64()]
	}
	return string(buf)
}

func validateConfirmationNumber(code string) error {
	if len(code) != confirmationLength {
		return fmt.Errorf("%w: confirmation number must be %d characters", domain.ErrInvalidInput, confirmationLength)
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("%w: confirmation number must use A-Z and 0-9 only", domain.ErrInvalidInput)
		}
	}
	return nil
}
