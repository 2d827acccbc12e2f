package pg

import (
	"database/sql"
	"errors"

	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
	internal_errors "github.com/dwikurnia/forum-api/internal/errors"
)

func (s *Storage) AddReply(reply entity.NewReply, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error) {
	var id, content, ownerId string
	err := s.db.QueryRow(`
	INSERT INTO replies(id, content, owner, comment_id)
	VALUES($1, $2, $3, $4)
	RETURNING id, content, owner`,
		s.newId("reply"), reply.Content, owner, commentId).Scan(&id, &content, &ownerId)
	if err != nil {
		return entity.AddedReply{}, err
	}
	return entity.ParseAddedReply(entity.AddedReplyPayload{Id: id, Content: content, Owner: ownerId})
}

func (s *Storage) VerifyReplyOwner(id domain.ReplyId, owner domain.UserId) error {
	var actualOwner string
	err := s.db.QueryRow(`
	SELECT owner FROM replies WHERE id = $1 AND is_deleted = FALSE`, id).Scan(&actualOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "balasan tidak ditemukan atau sudah dihapus"}
		}
		return err
	}
	if actualOwner != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Storage) DeleteReplyById(id domain.ReplyId) error {
	result, err := s.db.Exec(`
	UPDATE replies SET is_deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.NotFoundError{Message: "gagal menghapus balasan, balasan tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetRepliesByCommentId(commentId domain.CommentId) ([]domain.ReplyRow, error) {
	rows, err := s.db.Query(`
	SELECT
		replies.id,
		users.username,
		replies.date,
		replies.content,
		replies.is_deleted
	FROM replies
	INNER JOIN users ON replies.owner = users.id
	WHERE replies.comment_id = $1
	ORDER BY replies.date ASC`, commentId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []domain.ReplyRow
	for rows.Next() {
		var r domain.ReplyRow
		if err := rows.Scan(&r.Id, &r.Username, &r.Date, &r.Content, &r.IsDeleted); err != nil {
			return nil, err
		}
		replies = append(replies, r)
	}
	return replies, rows.Err()
}
