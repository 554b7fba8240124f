package api

import (
	"net/http"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

func (s *Server) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	image, err := fileFromForm(r, "image")
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := mediabackend.CreateAdRequest{
		ImageURL:    r.FormValue("ad_image"),
		Image:       image,
		RedirectURL: r.FormValue("redirect_url"),
		Active:      r.FormValue("is_active") == "true",
		Type:        r.FormValue("type"),
	}

	ad, err := s.service.CreateAd(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusCreated, envelope{"ad": ad})
}

func (s *Server) handleGetAd(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid ad id")
		return
	}

	ad, err := s.service.GetAd(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"ad": ad})
}

func (s *Server) handleListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := s.service.ListAds(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"ads": ads})
}

func (s *Server) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid ad id")
		return
	}

	image, err := fileFromForm(r, "image")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req mediabackend.UpdateAdRequest
	req.Image = image
	if v := r.FormValue("ad_image"); v != "" {
		req.ImageURL = &v
	}
	if v := r.FormValue("redirect_url"); v != "" {
		req.RedirectURL = &v
	}
	if v := r.FormValue("is_active"); v != "" {
		active := v == "true"
		req.Active = &active
	}
	if v := r.FormValue("type"); v != "" {
		req.Type = &v
	}

	ad, err := s.service.UpdateAd(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"ad": ad})
}

func (s *Server) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid ad id")
		return
	}

	if err := s.service.DeleteAd(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"message": "ad deleted"})
}
