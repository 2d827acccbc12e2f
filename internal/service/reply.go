package service

import (
	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
)

type ReplyService interface {
	Create(payload entity.NewReplyPayload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

type Reply struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Reply {
	return &Reply{threads, comments, replies}
}

// Create verifies the thread, then the comment (a soft-deleted comment
// counts as nonexistent for replying), then validates and persists.
// The checks are sequential and short-circuiting.
func (s *Reply) Create(payload entity.NewReplyPayload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error) {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return entity.AddedReply{}, err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return entity.AddedReply{}, err
	}
	reply, err := entity.ParseNewReply(payload)
	if err != nil {
		return entity.AddedReply{}, err
	}
	return s.replies.AddReply(reply, commentId, owner)
}

// Delete soft-deletes a reply after the same ordered checks as Create plus
// the ownership check on the reply itself.
func (s *Reply) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if err := s.threads.VerifyThreadExists(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(replyId, owner); err != nil {
		return err
	}
	return s.replies.DeleteReplyById(replyId)
}
