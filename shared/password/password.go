// Package password hashes staff credentials with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the work factor new hashes are written with.
const DefaultCost = bcrypt.DefaultCost

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hash returns the value stored in users.password. bcrypt refuses input
// longer than 72 bytes, which surfaces as ErrHashingPassword.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", errors.Join(ErrHashingPassword, err)
	}

	return string(hashed), nil
}

// Verify returns ErrInvalidPassword on a mismatch and ErrVerifyingPassword
// when the stored hash cannot be read.
func Verify(plain, hashed string) error {
	if plain == "" || hashed == "" {
		return ErrInvalidPassword
	}

	switch err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
	}
}

// NeedsRehash reports whether hashed was written with a lower cost than
// DefaultCost and should be replaced after the next successful login.
func NeedsRehash(hashed string) bool {
	cost, err := bcrypt.Cost([]byte(hashed))

	return err == nil && cost < DefaultCost
}
