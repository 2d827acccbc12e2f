package pg

import (
	"database/sql"
	"errors"

	internal_errors "github.com/dwikurnia/forum-api/internal/errors"
)

func (s *Storage) AddToken(token string) error {
	_, err := s.db.Exec(`INSERT INTO authentications(token) VALUES($1)`, token)
	return err
}

func (s *Storage) VerifyToken(token string) error {
	var found string
	err := s.db.QueryRow(`SELECT token FROM authentications WHERE token = $1`, token).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.InvariantError{Message: "refresh token tidak ditemukan di database"}
		}
		return err
	}
	return nil
}

func (s *Storage) DeleteToken(token string) error {
	_, err := s.db.Exec(`DELETE FROM authentications WHERE token = $1`, token)
	return err
}
