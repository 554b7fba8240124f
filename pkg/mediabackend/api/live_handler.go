package api

import (
	"encoding/json"
	"net/http"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

type livePayload struct {
	StreamURL *string `json:"stream_url"`
	Active    *bool   `json:"is_active"`
}

func (s *Server) handleCreateLiveStream(w http.ResponseWriter, r *http.Request) {
	var body livePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req := mediabackend.CreateLiveStreamRequest{
		StreamURL: deref(body.StreamURL),
	}
	if body.Active != nil {
		req.Active = *body.Active
	}

	stream, err := s.service.CreateLiveStream(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusCreated, envelope{"live": stream})
}

func (s *Server) handleGetActiveLiveStream(w http.ResponseWriter, r *http.Request) {
	stream, err := s.service.GetActiveLiveStream(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"live": stream})
}

func (s *Server) handleUpdateLiveStream(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid live stream id")
		return
	}

	var body livePayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req := mediabackend.UpdateLiveStreamRequest{
		StreamURL: body.StreamURL,
		Active:    body.Active,
	}

	stream, err := s.service.UpdateLiveStream(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"live": stream})
}

func (s *Server) handleDeleteLiveStream(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid live stream id")
		return
	}

	if err := s.service.DeleteLiveStream(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"message": "live stream deleted"})
}
