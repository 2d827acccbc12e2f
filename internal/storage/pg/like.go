package pg

import (
	"database/sql"
	"errors"

	"github.com/dwikurnia/forum-api/internal/domain"
)

func (s *Storage) VerifyLikeExists(commentId domain.CommentId, owner domain.UserId) (bool, error) {
	var found string
	err := s.db.QueryRow(`
	SELECT id FROM comment_likes WHERE comment_id = $1 AND owner = $2`, commentId, owner).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Storage) AddLike(commentId domain.CommentId, owner domain.UserId) error {
	_, err := s.db.Exec(`
	INSERT INTO comment_likes(id, comment_id, owner)
	VALUES($1, $2, $3)`, s.newId("like"), commentId, owner)
	return err
}

func (s *Storage) RemoveLike(commentId domain.CommentId, owner domain.UserId) error {
	_, err := s.db.Exec(`
	DELETE FROM comment_likes WHERE comment_id = $1 AND owner = $2`, commentId, owner)
	return err
}
