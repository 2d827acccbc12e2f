package domain

import "time"

// Raw records as returned by storage, owner already resolved to a username.
// The service layer turns these into entity projections.

type ThreadRow struct {
	Id       ThreadId
	Title    string
	Body     string
	Date     time.Time
	Username Username
}

type CommentRow struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
	LikeCount int
}

type ReplyRow struct {
	Id        ReplyId
	Username  Username
	Date      time.Time
	Content   string
	IsDeleted bool
}

type User struct {
	Id       UserId
	Username Username
	Fullname string
	Password string // bcrypt hash
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
