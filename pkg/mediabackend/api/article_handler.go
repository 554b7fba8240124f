package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	thumbnail, err := fileFromForm(r, "thumbnail")
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := mediabackend.CreateArticleRequest{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("desc"),
		URL:          r.FormValue("url"),
		Trending:     r.FormValue("is_trending") == "true",
		ThumbnailURL: r.FormValue("thumbnail"),
		Thumbnail:    thumbnail,
	}

	article, err := s.service.CreateArticle(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusCreated, envelope{"article": article})
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := s.service.GetArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"article": article})
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.service.ListArticles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"articles": articles})
}

func (s *Server) handleListTrendingArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.service.ListTrendingArticles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"articles": articles})
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid article id")
		return
	}

	thumbnail, err := fileFromForm(r, "thumbnail")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req mediabackend.UpdateArticleRequest
	req.Thumbnail = thumbnail
	if v := r.FormValue("thumbnail"); v != "" {
		req.ThumbnailURL = &v
	}
	if v := r.FormValue("title"); v != "" {
		req.Title = &v
	}
	if v := r.FormValue("desc"); v != "" {
		req.Description = &v
	}
	if v := r.FormValue("url"); v != "" {
		req.URL = &v
	}
	if v := r.FormValue("is_trending"); v != "" {
		trending := v == "true"
		req.Trending = &trending
	}

	article, err := s.service.UpdateArticle(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"article": article})
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := s.service.DeleteArticle(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"message": "article deleted"})
}
