package service

import (
	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
)

// Storage contracts fulfilled by internal/storage/pg. Services depend on
// these, never on the concrete adapter.
//
// Every Verify* method treats soft-deleted rows as absent. Only the
// read-path listing methods (GetCommentsByThreadId, GetRepliesByCommentId)
// still return deleted rows, flagged, so the detail projection can mask
// them instead of dropping them.

type ThreadStorage interface {
	AddThread(thread entity.NewThread, owner domain.UserId) (entity.AddedThread, error)
	GetThreadById(id domain.ThreadId) (domain.ThreadRow, error)
	VerifyThreadExists(id domain.ThreadId) error
}

type CommentStorage interface {
	AddComment(comment entity.NewComment, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error)
	VerifyCommentExists(id domain.CommentId) error
	VerifyCommentOwner(id domain.CommentId, owner domain.UserId) error
	DeleteCommentById(id domain.CommentId) error
	GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRow, error)
}

type ReplyStorage interface {
	AddReply(reply entity.NewReply, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error)
	VerifyReplyOwner(id domain.ReplyId, owner domain.UserId) error
	DeleteReplyById(id domain.ReplyId) error
	GetRepliesByCommentId(commentId domain.CommentId) ([]domain.ReplyRow, error)
}

type LikeStorage interface {
	VerifyLikeExists(commentId domain.CommentId, owner domain.UserId) (bool, error)
	AddLike(commentId domain.CommentId, owner domain.UserId) error
	RemoveLike(commentId domain.CommentId, owner domain.UserId) error
}

type UserStorage interface {
	AddUser(user entity.RegisterUser, passwordHash string) (entity.RegisteredUser, error)
	VerifyAvailableUsername(username domain.Username) error
	GetUserByUsername(username domain.Username) (domain.User, error)
}

// TokenStorage persists refresh tokens so they can be revoked.
type TokenStorage interface {
	AddToken(token string) error
	VerifyToken(token string) error
	DeleteToken(token string) error
}
