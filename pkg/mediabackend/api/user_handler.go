package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.service.RegisterUser(r.Context(), mediabackend.RegisterUserRequest{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusCreated, envelope{"user": user})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.service.AuthenticateUser(r.Context(), body.Email, body.Password)
	if err != nil {
		// Authentication failures come back as validation errors; for
		// login they map to 401 rather than 400.
		var ve *mediabackend.ValidationError
		if errors.As(err, &ve) {
			failure(w, r, http.StatusUnauthorized, ve.Error())
			return
		}
		writeError(w, r, err)
		return
	}

	claims := map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, tokenTTL)

	_, token, err := s.tokenAuth.Encode(claims)
	if err != nil {
		failure(w, r, http.StatusInternalServerError, "failed to issue token")
		return
	}

	success(w, r, http.StatusOK, envelope{"user": user, "token": token, "expires_in": int64(tokenTTL / time.Second)})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := s.service.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"user": user})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		failure(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	var body updateUserPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		failure(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.service.UpdateUser(r.Context(), id, mediabackend.UpdateUserRequest{
		Name:            body.Name,
		Email:           body.Email,
		CurrentPassword: body.CurrentPassword,
		NewPassword:     body.NewPassword,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"user": user})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.service.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	success(w, r, http.StatusOK, envelope{"users": users})
}
