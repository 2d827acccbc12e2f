package entity

import (
	"strings"
	"time"

	"github.com/dwikurnia/forum-api/internal/errors"
)

type NewReplyPayload struct {
	Content any
}

// NewReply is a validated reply creation request.
type NewReply struct {
	Content string
}

func ParseNewReply(p NewReplyPayload) (NewReply, error) {
	if p.Content == nil {
		return NewReply{}, errors.NewValidation("NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	content, ok := p.Content.(string)
	if !ok {
		return NewReply{}, errors.NewValidation("NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	if strings.TrimSpace(content) == "" {
		return NewReply{}, errors.NewValidation("NEW_REPLY.CANNOT_BE_EMPTY_STRING")
	}
	return NewReply{Content: content}, nil
}

type AddedReplyPayload struct {
	Id      any
	Content any
	Owner   any
}

type AddedReply struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func ParseAddedReply(p AddedReplyPayload) (AddedReply, error) {
	if p.Id == nil || p.Content == nil || p.Owner == nil {
		return AddedReply{}, errors.NewValidation("ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	if !isString(p.Id) || !isString(p.Content) || !isString(p.Owner) {
		return AddedReply{}, errors.NewValidation("ADDED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return AddedReply{
		Id:      p.Id.(string),
		Content: p.Content.(string),
		Owner:   p.Owner.(string),
	}, nil
}

type ReplyDetailPayload struct {
	Id        any
	Username  any
	Date      any
	Content   any
	IsDeleted any
}

type ReplyDetail struct {
	Id       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

func ParseReplyDetail(p ReplyDetailPayload) (ReplyDetail, error) {
	if p.Id == nil || p.Username == nil || p.Date == nil || p.Content == nil || p.IsDeleted == nil {
		return ReplyDetail{}, errors.NewValidation("REPLY_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	date, okDate := asTime(p.Date)
	isDeleted, okDeleted := p.IsDeleted.(bool)
	if !isString(p.Id) || !isString(p.Username) || !okDate || !isString(p.Content) || !okDeleted {
		return ReplyDetail{}, errors.NewValidation("REPLY_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}

	content := p.Content.(string)
	if isDeleted {
		content = DeletedReplyContent
	}

	return ReplyDetail{
		Id:       p.Id.(string),
		Username: p.Username.(string),
		Date:     date,
		Content:  content,
	}, nil
}
