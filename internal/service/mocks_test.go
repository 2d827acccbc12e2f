package service

import (
	stderrors "errors"
	"sync"

	"github.com/dwikurnia/forum-api/internal/domain"
	"github.com/dwikurnia/forum-api/internal/entity"
)

var errMismatch = stderrors.New("password mismatch")

// callRecorder tracks the order of storage calls so tests can assert the
// check sequences and short-circuit behavior of use cases.
type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (c *callRecorder) record(name string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, name)
}

func (c *callRecorder) names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface. Unset funcs default
// to success.
type MockThreadStorage struct {
	rec *callRecorder

	addThreadFunc          func(thread entity.NewThread, owner domain.UserId) (entity.AddedThread, error)
	getThreadByIdFunc      func(id domain.ThreadId) (domain.ThreadRow, error)
	verifyThreadExistsFunc func(id domain.ThreadId) error
}

func (m *MockThreadStorage) AddThread(thread entity.NewThread, owner domain.UserId) (entity.AddedThread, error) {
	m.rec.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread, owner)
	}
	return entity.AddedThread{Id: "thread-123", Title: thread.Title, Owner: owner}, nil
}

func (m *MockThreadStorage) GetThreadById(id domain.ThreadId) (domain.ThreadRow, error) {
	m.rec.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.ThreadRow{Id: id, Title: "a title", Body: "a body", Username: "dicoding"}, nil
}

func (m *MockThreadStorage) VerifyThreadExists(id domain.ThreadId) error {
	m.rec.record("VerifyThreadExists")
	if m.verifyThreadExistsFunc != nil {
		return m.verifyThreadExistsFunc(id)
	}
	return nil
}

// MockCommentStorage mocks the CommentStorage interface.
type MockCommentStorage struct {
	rec *callRecorder

	addCommentFunc            func(comment entity.NewComment, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error)
	verifyCommentExistsFunc   func(id domain.CommentId) error
	verifyCommentOwnerFunc    func(id domain.CommentId, owner domain.UserId) error
	deleteCommentByIdFunc     func(id domain.CommentId) error
	getCommentsByThreadIdFunc func(threadId domain.ThreadId) ([]domain.CommentRow, error)
}

func (m *MockCommentStorage) AddComment(comment entity.NewComment, threadId domain.ThreadId, owner domain.UserId) (entity.AddedComment, error) {
	m.rec.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment, threadId, owner)
	}
	return entity.AddedComment{Id: "comment-123", Content: comment.Content, Owner: owner}, nil
}

func (m *MockCommentStorage) VerifyCommentExists(id domain.CommentId) error {
	m.rec.record("VerifyCommentExists")
	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(id domain.CommentId, owner domain.UserId) error {
	m.rec.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStorage) DeleteCommentById(id domain.CommentId) error {
	m.rec.record("DeleteCommentById")
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.rec.record("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return nil, nil
}

// MockReplyStorage mocks the ReplyStorage interface.
type MockReplyStorage struct {
	rec *callRecorder

	addReplyFunc              func(reply entity.NewReply, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error)
	verifyReplyOwnerFunc      func(id domain.ReplyId, owner domain.UserId) error
	deleteReplyByIdFunc       func(id domain.ReplyId) error
	getRepliesByCommentIdFunc func(commentId domain.CommentId) ([]domain.ReplyRow, error)
}

func (m *MockReplyStorage) AddReply(reply entity.NewReply, commentId domain.CommentId, owner domain.UserId) (entity.AddedReply, error) {
	m.rec.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply, commentId, owner)
	}
	return entity.AddedReply{Id: "reply-123", Content: reply.Content, Owner: owner}, nil
}

func (m *MockReplyStorage) VerifyReplyOwner(id domain.ReplyId, owner domain.UserId) error {
	m.rec.record("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockReplyStorage) DeleteReplyById(id domain.ReplyId) error {
	m.rec.record("DeleteReplyById")
	if m.deleteReplyByIdFunc != nil {
		return m.deleteReplyByIdFunc(id)
	}
	return nil
}

func (m *MockReplyStorage) GetRepliesByCommentId(commentId domain.CommentId) ([]domain.ReplyRow, error) {
	m.rec.record("GetRepliesByCommentId")
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(commentId)
	}
	return nil, nil
}

// MockLikeStorage mocks the LikeStorage interface.
type MockLikeStorage struct {
	rec *callRecorder

	verifyLikeExistsFunc func(commentId domain.CommentId, owner domain.UserId) (bool, error)
	addLikeFunc          func(commentId domain.CommentId, owner domain.UserId) error
	removeLikeFunc       func(commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockLikeStorage) VerifyLikeExists(commentId domain.CommentId, owner domain.UserId) (bool, error) {
	m.rec.record("VerifyLikeExists")
	if m.verifyLikeExistsFunc != nil {
		return m.verifyLikeExistsFunc(commentId, owner)
	}
	return false, nil
}

func (m *MockLikeStorage) AddLike(commentId domain.CommentId, owner domain.UserId) error {
	m.rec.record("AddLike")
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, owner)
	}
	return nil
}

func (m *MockLikeStorage) RemoveLike(commentId domain.CommentId, owner domain.UserId) error {
	m.rec.record("RemoveLike")
	if m.removeLikeFunc != nil {
		return m.removeLikeFunc(commentId, owner)
	}
	return nil
}

// MockUserStorage mocks the UserStorage interface.
type MockUserStorage struct {
	rec *callRecorder

	addUserFunc                 func(user entity.RegisterUser, passwordHash string) (entity.RegisteredUser, error)
	verifyAvailableUsernameFunc func(username domain.Username) error
	getUserByUsernameFunc       func(username domain.Username) (domain.User, error)
}

func (m *MockUserStorage) AddUser(user entity.RegisterUser, passwordHash string) (entity.RegisteredUser, error) {
	m.rec.record("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(user, passwordHash)
	}
	return entity.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserStorage) VerifyAvailableUsername(username domain.Username) error {
	m.rec.record("VerifyAvailableUsername")
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserStorage) GetUserByUsername(username domain.Username) (domain.User, error) {
	m.rec.record("GetUserByUsername")
	if m.getUserByUsernameFunc != nil {
		return m.getUserByUsernameFunc(username)
	}
	return domain.User{Id: "user-123", Username: username}, nil
}

// MockTokenStorage mocks the TokenStorage interface.
type MockTokenStorage struct {
	rec *callRecorder

	addTokenFunc    func(token string) error
	verifyTokenFunc func(token string) error
	deleteTokenFunc func(token string) error
}

func (m *MockTokenStorage) AddToken(token string) error {
	m.rec.record("AddToken")
	if m.addTokenFunc != nil {
		return m.addTokenFunc(token)
	}
	return nil
}

func (m *MockTokenStorage) VerifyToken(token string) error {
	m.rec.record("VerifyToken")
	if m.verifyTokenFunc != nil {
		return m.verifyTokenFunc(token)
	}
	return nil
}

func (m *MockTokenStorage) DeleteToken(token string) error {
	m.rec.record("DeleteToken")
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(token)
	}
	return nil
}

// MockHasher mocks the Hasher interface with trivial reversible hashing.
type MockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash, password string) error
}

func (m *MockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockHasher) Compare(hash, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	if hash == "hashed:"+password {
		return nil
	}
	return errMismatch
}

// MockJwt mocks the Jwt interface.
type MockJwt struct {
	newAccessTokenFunc     func(user domain.User) (string, error)
	newRefreshTokenFunc    func(user domain.User) (string, error)
	decodeRefreshTokenFunc func(token string) (domain.User, error)
}

func (m *MockJwt) NewAccessToken(user domain.User) (string, error) {
	if m.newAccessTokenFunc != nil {
		return m.newAccessTokenFunc(user)
	}
	return "access-token", nil
}

func (m *MockJwt) NewRefreshToken(user domain.User) (string, error) {
	if m.newRefreshTokenFunc != nil {
		return m.newRefreshTokenFunc(user)
	}
	return "refresh-token", nil
}

func (m *MockJwt) DecodeRefreshToken(token string) (domain.User, error) {
	if m.decodeRefreshTokenFunc != nil {
		return m.decodeRefreshTokenFunc(token)
	}
	return domain.User{Id: "user-123", Username: "dicoding"}, nil
}
