package pg

import (
	"database/sql"
	"errors"

	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
	internal_errors "github.com/dwikurnia/forum-api/internal/errors"
)

func (s *Storage) AddComment(comment entity.NewComment, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error) {
	var id, content, ownerId string
	err := s.db.QueryRow(`
	INSERT INTO comments(id, content, owner, thread_id)
	VALUES($1, $2, $3, $4)
	RETURNING id, content, owner`,
		s.newId("comment"), comment.Content, owner, threadId).Scan(&id, &content, &ownerId)
	if err != nil {
		return entity.AddedComment{}, err
	}
	return entity.ParseAddedComment(entity.AddedCommentPayload{Id: id, Content: content, Owner: ownerId})
}

// VerifyCommentExists treats soft-deleted comments as absent.
func (s *Storage) VerifyCommentExists(id domain.CommentId) error {
	var found string
	err := s.db.QueryRow(`
	SELECT id FROM comments WHERE id = $1 AND is_deleted = FALSE`, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan atau sudah dihapus"}
		}
		return err
	}
	return nil
}

// VerifyCommentOwner reports NotFound for missing or soft-deleted comments
// and Authorization for an owner mismatch, in that order.
func (s *Storage) VerifyCommentOwner(id domain.CommentId, owner domain.UserId) error {
	var actualOwner string
	err := s.db.QueryRow(`
	SELECT owner FROM comments WHERE id = $1 AND is_deleted = FALSE`, id).Scan(&actualOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan atau sudah dihapus"}
		}
		return err
	}
	if actualOwner != owner {
		return &internal_errors.AuthorizationError{Message: "anda tidak berhak mengakses resource ini"}
	}
	return nil
}

func (s *Storage) DeleteCommentById(id domain.CommentId) error {
	result, err := s.db.Exec(`
	UPDATE comments SET is_deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	// Race-safety fallback: the ownership check already confirmed existence.
	if deleted == 0 {
		return &internal_errors.NotFoundError{Message: "gagal menghapus komentar, komentar tidak ditemukan"}
	}
	return nil
}

func (s *Storage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.Query(`
	SELECT
		comments.id,
		users.username,
		comments.date,
		comments.content,
		comments.is_deleted,
		COUNT(comment_likes.id)::int AS like_count
	FROM comments
	INNER JOIN users ON comments.owner = users.id
	LEFT JOIN comment_likes ON comment_likes.comment_id = comments.id
	WHERE comments.thread_id = $1
	GROUP BY comments.id, users.username
	ORDER BY comments.date ASC`, threadId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.CommentRow
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.Username, &c.Date, &c.Content, &c.IsDeleted, &c.LikeCount); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
