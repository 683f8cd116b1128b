package psswd

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/village-connect/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes bcrypt не принимает пароли длиннее.
const MaxPasswordBytes = 72

type PasswordHash string

func (p PasswordHash) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("hashing password: %w", domain.NewValidationError("password",
				fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes)))
		}
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(bytes), nil
}

func (p PasswordHash) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
