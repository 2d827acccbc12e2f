package service

import (
	"github.com/dwikurnia/forum-api/internal/domain"
)

type LikeService interface {
	Toggle(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Like struct {
	threads  ThreadStorage
	comments CommentStorage
	likes    LikeStorage
}

func NewLike(threads ThreadStorage, comments CommentStorage, likes LikeStorage) *Like {
	return &Like{threads, comments, likes}
}

// Toggle flips like-existence for (commentId, owner): absent likes are
// created, present ones removed. There is no explicit like/unlike verb.
// The check-then-act pair is not atomic; the UNIQUE(comment_id, owner)
// constraint in storage is the backstop for concurrent double-toggles.
func (s *Like) Toggle(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return err
	}
	liked, err := s.likes.VerifyLikeExists(commentId, owner)
	if err != nil {
		return err
	}
	if liked {
		return s.likes.RemoveLike(commentId, owner)
	}
	return s.likes.AddLike(commentId, owner)
}
