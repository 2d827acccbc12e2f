package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	mw "github.com/dwikurnia/forum-api/internal/middleware"
)

// PutCommentLike toggles the caller's like on a comment. The verb is PUT
// because the request is idempotent in intent: it declares "flip my like",
// carrying no body.
func (h *Handler) PutCommentLike(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.likes.Toggle(threadId, commentId, user.Id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
