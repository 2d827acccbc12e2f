package pg

import (
	"database/sql"
	"errors"

	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
	internal_errors "github.com/dwikurnia/forum-api/internal/errors"
)

func (s *Storage) AddUser(user entity.RegisterUser, passwordHash string) (entity.RegisteredUser, error) {
	var id, username, fullname string
	err := s.db.QueryRow(`
	INSERT INTO users(id, username, password, fullname)
	VALUES($1, $2, $3, $4)
	RETURNING id, username, fullname`,
		s.newId("user"), user.Username, passwordHash, user.Fullname).Scan(&id, &username, &fullname)
	if err != nil {
		return entity.RegisteredUser{}, err
	}
	return entity.ParseRegisteredUser(entity.RegisteredUserPayload{Id: id, Username: username, Fullname: fullname})
}

func (s *Storage) VerifyAvailableUsername(username domain.Username) error {
	var found string
	err := s.db.QueryRow(`SELECT username FROM users WHERE username = $1`, username).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return err
	}
	return &internal_errors.InvariantError{Message: "username tidak tersedia"}
}

func (s *Storage) GetUserByUsername(username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
	SELECT id, username, password, fullname FROM users WHERE username = $1`, username).
		Scan(&user.Id, &user.Username, &user.Password, &user.Fullname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.AuthenticationError{Message: "kredensial yang Anda masukkan salah"}
		}
		return domain.User{}, err
	}
	return user, nil
}
