package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikurnia/forum-api/internal/entity"
	mw "github.com/dwikurnia/forum-api/internal/middleware"
	"github.com/dwikurnia/forum-api/internal/utils"
)

func (h *Handler) PostReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	added, err := h.replies.Create(entity.NewReplyPayload{Content: body["content"]}, threadId, commentId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedReply": added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")

	if err := h.replies.Delete(threadId, commentId, replyId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
