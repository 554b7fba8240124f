package api

import (
	"encoding/json"
	"net/http"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

type inquiryPayload struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Query       string `json:"query"`
}

func (p inquiryPayload) toRequest() mediabackend.CreateInquiryRequest {
	return mediabackend.CreateInquiryRequest{
		UserID:      p.UserID,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Query:       p.Query,
	}
}

func (s *Server) handleCreateHireRequest(w http.ResponseWriter, r *http.Request) {
	var body inquiryPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := s.service.CreateHireRequest(r.Context(), body.toRequest())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusCreated, envelope{"request": req})
}

func (s *Server) handleListHireRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := s.service.ListHireRequests(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"requests": requests})
}

func (s *Server) handleCreateAdsInquiry(w http.ResponseWriter, r *http.Request) {
	var body inquiryPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	inquiry, err := s.service.CreateAdsInquiry(r.Context(), body.toRequest())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusCreated, envelope{"inquiry": inquiry})
}

func (s *Server) handleListAdsInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := s.service.ListAdsInquiries(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"inquiries": inquiries})
}
