package pg

import (
	"database/sql"
	"errors"

	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
	internal_errors "github.com/dwikurnia/forum-api/internal/errors"
)

func (s *Storage) AddThread(thread entity.NewThread, owner domain.UserId) (entity.AddedThread, error) {
	var id, title, ownerId string
	err := s.db.QueryRow(`
	INSERT INTO threads(id, title, body, owner)
	VALUES($1, $2, $3, $4)
	RETURNING id, title, owner`,
		s.newId("thread"), thread.Title, thread.Body, owner).Scan(&id, &title, &ownerId)
	if err != nil {
		return entity.AddedThread{}, err
	}
	return entity.ParseAddedThread(entity.AddedThreadPayload{Id: id, Title: title, Owner: ownerId})
}

func (s *Storage) GetThreadById(id domain.ThreadId) (domain.ThreadRow, error) {
	var row domain.ThreadRow
	err := s.db.QueryRow(`
	SELECT threads.id, threads.title, threads.body, threads.date, users.username
	FROM threads
	INNER JOIN users ON threads.owner = users.id
	WHERE threads.id = $1`, id).Scan(&row.Id, &row.Title, &row.Body, &row.Date, &row.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRow{}, &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return domain.ThreadRow{}, err
	}
	return row, nil
}

func (s *Storage) VerifyThreadExists(id domain.ThreadId) error {
	var found string
	err := s.db.QueryRow(`SELECT id FROM threads WHERE id = $1`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return err
	}
	return nil
}
