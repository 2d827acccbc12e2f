package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikurnia/forum-api/internal/entity"
	mw "github.com/dwikurnia/forum-api/internal/middleware"
	"github.com/dwikurnia/forum-api/internal/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")

	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	added, err := h.comments.Create(entity.NewCommentPayload{Content: body["content"]}, threadId, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedComment": added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comments.Delete(threadId, commentId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
