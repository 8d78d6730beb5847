package account

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier hashes and checks secrets. The original storefront stored
// passwords in plaintext; hashing behind this interface is a deliberate
// upgrade, not a behavior change — login still accepts the same inputs.
type Verifier interface {
	Hash(secret string) (string, error)
	Verify(hashed, secret string) error
}

type BcryptVerifier struct{}

func NewBcryptVerifier() BcryptVerifier {
	return BcryptVerifier{}
}

func (BcryptVerifier) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("account: failed to hash secret: %w", err)
	}
	return string(hashed), nil
}

func (BcryptVerifier) Verify(hashed, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret))
}
