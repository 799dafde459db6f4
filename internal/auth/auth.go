package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

type Core interface {
	HashPassword(pswd string) (string, error)
	ComparePasswords(hashed, pswd []byte) error
	NewOpaqueToken() (string, error)
	NewVerificationCode() (string, error)
}

type Auth struct{}

func New() *Auth {
	return &Auth{}
}

func (a *Auth) HashPassword(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), 10)
	return string(bytes), err
}

func (a *Auth) ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NewOpaqueToken returns 32 random bytes hex-encoded. Used for the
// session and refresh tokens stored on the session row.
func (a *Auth) NewOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// NewVerificationCode returns a 6-digit numeric code, zero-padded.
func (a *Auth) NewVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
