package service

import (
	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
)

type ThreadService interface {
	Create(payload entity.NewThreadPayload, owner domain.UserId) (entity.AddedThread, error)
	GetDetail(id domain.ThreadId) (entity.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Thread {
	return &Thread{threads, comments, replies}
}

// Create validates the payload and persists the thread. Threads have no
// parent, so no existence check precedes the write.
func (s *Thread) Create(payload entity.NewThreadPayload, owner domain.UserId) (entity.AddedThread, error) {
	thread, err := entity.ParseNewThread(payload)
	if err != nil {
		return entity.AddedThread{}, err
	}
	return s.threads.AddThread(thread, owner)
}

// GetDetail assembles the full thread aggregate: the thread row, its
// comments in creation order, and each comment's replies in creation
// order. Deleted comments and replies stay in place with their content
// masked by the entity constructors.
func (s *Thread) GetDetail(id domain.ThreadId) (entity.ThreadDetail, error) {
	if err := s.threads.VerifyThreadExists(id); err != nil {
		return entity.ThreadDetail{}, err
	}
	row, err := s.threads.GetThreadById(id)
	if err != nil {
		return entity.ThreadDetail{}, err
	}

	commentRows, err := s.comments.GetCommentsByThreadId(id)
	if err != nil {
		return entity.ThreadDetail{}, err
	}

	comments := make([]entity.CommentDetail, 0, len(commentRows))
	for _, c := range commentRows {
		replyRows, err := s.replies.GetRepliesByCommentId(c.Id)
		if err != nil {
			return entity.ThreadDetail{}, err
		}
		replies := make([]entity.ReplyDetail, 0, len(replyRows))
		for _, r := range replyRows {
			reply, err := entity.ParseReplyDetail(entity.ReplyDetailPayload{
				Id:        r.Id,
				Username:  r.Username,
				Date:      r.Date,
				Content:   r.Content,
				IsDeleted: r.IsDeleted,
			})
			if err != nil {
				return entity.ThreadDetail{}, err
			}
			replies = append(replies, reply)
		}

		comment, err := entity.ParseCommentDetail(entity.CommentDetailPayload{
			Id:        c.Id,
			Username:  c.Username,
			Date:      c.Date,
			Content:   c.Content,
			IsDeleted: c.IsDeleted,
			Replies:   replies,
			LikeCount: c.LikeCount,
		})
		if err != nil {
			return entity.ThreadDetail{}, err
		}
		comments = append(comments, comment)
	}

	return entity.ParseThreadDetail(entity.ThreadDetailPayload{
		Id:       row.Id,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date,
		Username: row.Username,
		Comments: comments,
	})
}
