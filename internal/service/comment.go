package service

import (
	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
)

type CommentService interface {
	Create(payload entity.NewCommentPayload, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
}

func NewComment(threads ThreadStorage, comments CommentStorage) *Comment {
	return &Comment{threads, comments}
}

// Create checks the parent thread before validating and persisting the
// comment. A failed check short-circuits: nothing is written.
func (s *Comment) Create(payload entity.NewCommentPayload, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error) {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return entity.AddedComment{}, err
	}
	comment, err := entity.ParseNewComment(payload)
	if err != nil {
		return entity.AddedComment{}, err
	}
	return s.comments.AddComment(comment, threadId, owner)
}

// Delete soft-deletes a comment. Existence is confirmed before ownership,
// so a missing or already-deleted comment reports NotFound, never an
// authorization failure.
func (s *Comment) Delete(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(commentId, owner); err != nil {
		return err
	}
	return s.comments.DeleteCommentById(commentId)
}
