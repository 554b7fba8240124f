package api

import (
	"encoding/json"
	"net/http"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

type aboutPayload struct {
	OrgName     *string `json:"org_name"`
	Description *string `json:"desc"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}

func (s *Server) handleReplaceAbout(w http.ResponseWriter, r *http.Request) {
	var body aboutPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req := mediabackend.ReplaceAboutRequest{
		OrgName:     deref(body.OrgName),
		Description: deref(body.Description),
		Email:       deref(body.Email),
		Phone:       deref(body.Phone),
	}

	about, err := s.service.ReplaceAbout(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusCreated, envelope{"about": about})
}

func (s *Server) handleGetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := s.service.GetAbout(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"about": about})
}

func (s *Server) handleUpdateAbout(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid about id")
		return
	}

	var body aboutPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req := mediabackend.UpdateAboutRequest{
		OrgName:     body.OrgName,
		Description: body.Description,
		Email:       body.Email,
		Phone:       body.Phone,
	}

	about, err := s.service.UpdateAbout(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"about": about})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
