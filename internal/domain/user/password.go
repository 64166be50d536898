package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/gpmendes7/bookstoremanager-course/pkg/errors"
)

// PasswordEncoder 密码哈希
type PasswordEncoder interface {
	Encode(plain string) (string, error)
	Matches(hashed, plain string) error
}

// BcryptEncoder bcrypt实现（自动加盐，cost越高越慢）
type BcryptEncoder struct {
	cost int
}

// NewBcryptEncoder cost超出范围时使用bcrypt.DefaultCost
func NewBcryptEncoder(cost int) *BcryptEncoder {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncoder{cost: cost}
}

// Encode 明文 → 哈希
func (e *BcryptEncoder) Encode(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), e.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "Failed to encode password")
	}
	return string(hashed), nil
}

// Matches 校验明文与哈希，不匹配返回ErrInvalidPassword
func (e *BcryptEncoder) Matches(hashed, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "Failed to verify password")
	}
	return nil
}
