package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dwikurnia/forum-api/internal/domain"
	internal_errors "github.com/dwikurnia/forum-api/internal/errors"
	"github.com/dwikurnia/forum-api/internal/logger"
)

type JwtService interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeAccessToken(token string) (domain.User, error)
	DecodeRefreshToken(token string) (domain.User, error)
}

type Jwt struct {
	accessKey  string
	refreshKey string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *Jwt {
	return &Jwt{accessKey, refreshKey, accessTTL, refreshTTL}
}

func (j *Jwt) NewAccessToken(user domain.User) (string, error) {
	return j.newToken(user, j.accessKey, j.accessTTL)
}

func (j *Jwt) NewRefreshToken(user domain.User) (string, error) {
	return j.newToken(user, j.refreshKey, j.refreshTTL)
}

func (j *Jwt) newToken(user domain.User, key string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("can't create token: %w", err)
	}
	return signed, nil
}

func (j *Jwt) DecodeAccessToken(tokenStr string) (domain.User, error) {
	return j.decode(tokenStr, j.accessKey, "access token tidak valid")
}

func (j *Jwt) DecodeRefreshToken(tokenStr string) (domain.User, error) {
	return j.decode(tokenStr, j.refreshKey, "refresh token tidak valid")
}

func (j *Jwt) decode(tokenStr, key, failMsg string) (domain.User, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(key), nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, &internal_errors.AuthenticationError{Message: failMsg}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, &internal_errors.AuthenticationError{Message: failMsg}
	}
	id, okId := claims["id"].(string)
	username, okName := claims["username"].(string)
	if !okId || !okName {
		return domain.User{}, &internal_errors.AuthenticationError{Message: failMsg}
	}

	return domain.User{Id: id, Username: username}, nil
}
