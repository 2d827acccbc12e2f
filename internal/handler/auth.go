package handler

import (
	"net/http"

	"github.com/dwikurnia/forum-api/internal/entity"
	"github.com/dwikurnia/forum-api/internal/utils"
)

func (h *Handler) PostUser(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	added, err := h.users.Register(entity.RegisterUserPayload{
		Username: body["username"],
		Password: body["password"],
		Fullname: body["fullname"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"addedUser": added})
}

func (h *Handler) PostAuthentication(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	tokens, err := h.auth.Login(entity.UserLoginPayload{
		Username: body["username"],
		Password: body["password"],
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, tokens)
}

func (h *Handler) PutAuthentication(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	accessToken, err := h.auth.Refresh(body["refreshToken"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"accessToken": accessToken})
}

func (h *Handler) DeleteAuthentication(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := utils.Decode(r.Body, &body); err != nil {
		writeError(w, err)
		return
	}

	if err := h.auth.Logout(body["refreshToken"]); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}
