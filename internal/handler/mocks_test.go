package handler

import (
	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
)

type MockThreadService struct {
	MockCreate    func(payload entity.NewThreadPayload, owner domain.UserId) (entity.AddedThread, error)
	MockGetDetail func(id domain.ThreadId) (entity.ThreadDetail, error)
}

func (m *MockThreadService) Create(payload entity.NewThreadPayload, owner domain.UserId) (entity.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, owner)
	}
	return entity.AddedThread{Id: "thread-123", Owner: owner}, nil
}

func (m *MockThreadService) GetDetail(id domain.ThreadId) (entity.ThreadDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(id)
	}
	return entity.ThreadDetail{Id: id, Comments: []entity.CommentDetail{}}, nil
}

type MockCommentService struct {
	MockCreate func(payload entity.NewCommentPayload, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockCommentService) Create(payload entity.NewCommentPayload, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, threadId, owner)
	}
	return entity.AddedComment{Id: "comment-123", Owner: owner}, nil
}

func (m *MockCommentService) Delete(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, owner)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(payload entity.NewReplyPayload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyService) Create(payload entity.NewReplyPayload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, threadId, commentId, owner)
	}
	return entity.AddedReply{Id: "reply-123", Owner: owner}, nil
}

func (m *MockReplyService) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, replyId, owner)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockLikeService) Toggle(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.MockToggle != nil {
		return m.MockToggle(threadId, commentId, owner)
	}
	return nil
}

type MockUserService struct {
	MockRegister func(payload entity.RegisterUserPayload) (entity.RegisteredUser, error)
}

func (m *MockUserService) Register(payload entity.RegisterUserPayload) (entity.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(payload)
	}
	return entity.RegisteredUser{Id: "user-123"}, nil
}

type MockAuthService struct {
	MockLogin   func(payload entity.UserLoginPayload) (domain.TokenPair, error)
	MockRefresh func(refreshToken any) (string, error)
	MockLogout  func(refreshToken any) error
}

func (m *MockAuthService) Login(payload entity.UserLoginPayload) (domain.TokenPair, error) {
	if m.MockLogin != nil {
		return m.MockLogin(payload)
	}
	return domain.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
}

func (m *MockAuthService) Refresh(refreshToken any) (string, error) {
	if m.MockRefresh != nil {
		return m.MockRefresh(refreshToken)
	}
	return "access-token", nil
}

func (m *MockAuthService) Logout(refreshToken any) error {
	if m.MockLogout != nil {
		return m.MockLogout(refreshToken)
	}
	return nil
}
