package domain

type (
	UserId   = string
	Username = string

	ThreadId  = string
	CommentId = string
	ReplyId   = string
)
