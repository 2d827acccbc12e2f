package service

import (
	"github.com/dwikurnia/forum-api/internal/entity"
	"github.com/dwikurnia/forum-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(payload entity.RegisterUserPayload) (entity.RegisteredUser, error)
}

// Hasher abstracts password hashing so the service can be tested without
// paying bcrypt cost per case.
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

type User struct {
	users  UserStorage
	hasher Hasher
}

func NewUser(users UserStorage, hasher Hasher) *User {
	return &User{users, hasher}
}

// Register validates the payload, claims the username, hashes the password
// and persists the user.
func (s *User) Register(payload entity.RegisterUserPayload) (entity.RegisteredUser, error) {
	user, err := entity.ParseRegisterUser(payload)
	if err != nil {
		return entity.RegisteredUser{}, err
	}
	if err := s.users.VerifyAvailableUsername(user.Username); err != nil {
		return entity.RegisteredUser{}, err
	}
	passwordHash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return entity.RegisteredUser{}, err
	}
	return s.users.AddUser(user, passwordHash)
}
