package service

import (
	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
	"github.com/dwikurnia/forum-api/internal/errors"
	"github.com/dwikurnia/forum-api/internal/logger"
)

type AuthService interface {
	Login(payload entity.UserLoginPayload) (domain.TokenPair, error)
	Refresh(refreshToken any) (string, error)
	Logout(refreshToken any) error
}

// Jwt issues and verifies tokens for the auth service.
type Jwt interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeRefreshToken(token string) (domain.User, error)
}

type Auth struct {
	users  UserStorage
	tokens TokenStorage
	hasher Hasher
	jwt    Jwt
}

func NewAuth(users UserStorage, tokens TokenStorage, hasher Hasher, jwt Jwt) *Auth {
	return &Auth{users, tokens, hasher, jwt}
}

// Login verifies credentials and issues an access/refresh token pair.
// The refresh token is persisted so Logout can revoke it.
func (a *Auth) Login(payload entity.UserLoginPayload) (domain.TokenPair, error) {
	login, err := entity.ParseUserLogin(payload)
	if err != nil {
		return domain.TokenPair{}, err
	}

	user, err := a.users.GetUserByUsername(login.Username)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := a.hasher.Compare(user.Password, login.Password); err != nil {
		return domain.TokenPair{}, &errors.AuthenticationError{Message: "kredensial yang Anda masukkan salah"}
	}

	accessToken, err := a.jwt.NewAccessToken(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refreshToken, err := a.jwt.NewRefreshToken(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := a.tokens.AddToken(refreshToken); err != nil {
		return domain.TokenPair{}, err
	}

	logger.Log.Info("user logged in", "userId", user.Id)
	return domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh trades a stored refresh token for a new access token.
func (a *Auth) Refresh(refreshToken any) (string, error) {
	token, err := parseRefreshToken("REFRESH_AUTHENTICATION_USE_CASE", refreshToken)
	if err != nil {
		return "", err
	}
	user, err := a.jwt.DecodeRefreshToken(token)
	if err != nil {
		return "", err
	}
	if err := a.tokens.VerifyToken(token); err != nil {
		return "", err
	}
	return a.jwt.NewAccessToken(user)
}

// Logout revokes the refresh token.
func (a *Auth) Logout(refreshToken any) error {
	token, err := parseRefreshToken("DELETE_AUTHENTICATION_USE_CASE", refreshToken)
	if err != nil {
		return err
	}
	if err := a.tokens.VerifyToken(token); err != nil {
		return err
	}
	return a.tokens.DeleteToken(token)
}

func parseRefreshToken(prefix string, v any) (string, error) {
	if v == nil {
		return "", errors.NewValidation(prefix + ".NOT_CONTAIN_REFRESH_TOKEN")
	}
	token, ok := v.(string)
	if !ok {
		return "", errors.NewValidation(prefix + ".PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return token, nil
}
