package handler

import (
	"github.com/dwikurnia/forum-api/internal/service"
)

type Handler struct {
	threads  service.ThreadService
	comments service.CommentService
	replies  service.ReplyService
	likes    service.LikeService
	users    service.UserService
	auth     service.AuthService
}

func New(threads service.ThreadService, comments service.CommentService, replies service.ReplyService, likes service.LikeService, users service.UserService, auth service.AuthService) *Handler {
	return &Handler{threads, comments, replies, likes, users, auth}
}
