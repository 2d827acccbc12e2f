package entity

import (
	"time"

	"github.com/dwikurnia/forum-api/internal/errors"
)

// NewThreadPayload is the raw creation body for a thread.
type NewThreadPayload struct {
	Title any
	Body  any
}

// NewThread is a validated thread creation request. Title and body are
// checked for presence and type only; blank strings are accepted.
type NewThread struct {
	Title string
	Body  string
}

func ParseNewThread(p NewThreadPayload) (NewThread, error) {
	if p.Title == nil || p.Body == nil {
		return NewThread{}, errors.NewValidation("NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	title, okTitle := p.Title.(string)
	body, okBody := p.Body.(string)
	if !okTitle || !okBody {
		return NewThread{}, errors.NewValidation("NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return NewThread{Title: title, Body: body}, nil
}

type AddedThreadPayload struct {
	Id    any
	Title any
	Owner any
}

// AddedThread is the projection returned after a thread is persisted.
type AddedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func ParseAddedThread(p AddedThreadPayload) (AddedThread, error) {
	if p.Id == nil || p.Title == nil || p.Owner == nil {
		return AddedThread{}, errors.NewValidation("ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	if !isString(p.Id) || !isString(p.Title) || !isString(p.Owner) {
		return AddedThread{}, errors.NewValidation("ADDED_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return AddedThread{
		Id:    p.Id.(string),
		Title: p.Title.(string),
		Owner: p.Owner.(string),
	}, nil
}

type ThreadDetailPayload struct {
	Id       any
	Title    any
	Body     any
	Date     any
	Username any
	Comments any
}

// ThreadDetail aggregates a thread with its (possibly masked) comments.
type ThreadDetail struct {
	Id       string          `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

func ParseThreadDetail(p ThreadDetailPayload) (ThreadDetail, error) {
	if p.Id == nil || p.Title == nil || p.Body == nil || p.Date == nil || p.Username == nil || p.Comments == nil {
		return ThreadDetail{}, errors.NewValidation("THREAD_DETAIL.NOT_CONTAIN_NEEDED_PROPERTY")
	}
	date, okDate := asTime(p.Date)
	comments, okComments := p.Comments.([]CommentDetail)
	if !isString(p.Id) || !isString(p.Title) || !isString(p.Body) || !okDate || !isString(p.Username) || !okComments {
		return ThreadDetail{}, errors.NewValidation("THREAD_DETAIL.NOT_MEET_DATA_TYPE_SPECIFICATION")
	}
	return ThreadDetail{
		Id:       p.Id.(string),
		Title:    p.Title.(string),
		Body:     p.Body.(string),
		Date:     date,
		Username: p.Username.(string),
		Comments: comments,
	}, nil
}
