package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dwikurnia/forum-api/internal/entity"
	mw "github.com/dwikurnia/forum-api/internal/middleware"
	"github.com/dwikurnia/forum-api/internal/utils"
)

func (h *Handler) PostThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	added, err := h.threads.Create(entity.NewThreadPayload{
		Title: body["title"],
		Body:  body["body"],
	}, user.Id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedThread": added})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	detail, err := h.threads.GetDetail(threadId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"thread": detail})
}
