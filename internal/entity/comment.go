package entity

import (
	"strings"
	"time"

	"github.com/dwikurnia/forum-api/internal/errors"
)

type NewCommentPayload struct {
	Content any
}

// NewComment is a validated comment creation request.
type NewComment struct {
	Content string
}

func ParseNewComment(p NewCommentPayload) (NewComment, error) {
	if p.Content == nil {
		return NewComment{}, errors.NewValidation("NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	content, ok := p.Content.(string)
	if !ok {
		return NewComment{}, errors.NewValidation("NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	if strings.TrimSpace(content) == "" {
		return NewComment{}, errors.NewValidation("NEW_COMMENT.CANNOT_BE_EMPTY_STRING")
	}
	return NewComment{Content: content}, nil
}

type AddedCommentPayload struct {
	Id      any
	Content any
	Owner   any
}

type AddedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func ParseAddedComment(p AddedCommentPayload) (AddedComment, error) {
	if p.Id == nil || p.Content == nil || p.Owner == nil {
		return AddedComment{}, errors.NewValidation("ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	if !isString(p.Id) || !isString(p.Content) || !isString(p.Owner) {
		return AddedComment{}, errors.NewValidation("ADDED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return AddedComment{
		Id:      p.Id.(string),
		Content: p.Content.(string),
		Owner:   p.Owner.(string),
	}, nil
}

type CommentDetailPayload struct {
	Id        any
	Username  any
	Date      any
	Content   any
	IsDeleted any
	Replies   any
	LikeCount any // optional, defaults to 0
}

// CommentDetail is the read projection of a comment. Deleted comments keep
// their place in the list but surface the placeholder instead of content.
type CommentDetail struct {
	Id        string        `json:"id"`
	Username  string        `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	Replies   []ReplyDetail `json:"replies"`
	LikeCount int           `json:"likeCount"`
}

func ParseCommentDetail(p CommentDetailPayload) (CommentDetail, error) {
	if p.Id == nil || p.Username == nil || p.Date == nil || p.Content == nil || p.IsDeleted == nil || p.Replies == nil {
		return CommentDetail{}, errors.NewValidation("COMMENT_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	date, okDate := asTime(p.Date)
	isDeleted, okDeleted := p.IsDeleted.(bool)
	replies, okReplies := p.Replies.([]ReplyDetail)
	likeCount := 0
	okLikes := true
	if p.LikeCount != nil {
		likeCount, okLikes = asInt(p.LikeCount)
	}
	if !isString(p.Id) || !isString(p.Username) || !okDate || !isString(p.Content) || !okDeleted || !okReplies || !okLikes {
		return CommentDetail{}, errors.NewValidation("COMMENT_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}

	content := p.Content.(string)
	if isDeleted {
		content = DeletedCommentContent
	}

	return CommentDetail{
		Id:        p.Id.(string),
		Username:  p.Username.(string),
		Date:      date,
		Content:   content,
		Replies:   replies,
		LikeCount: likeCount,
	}, nil
}
