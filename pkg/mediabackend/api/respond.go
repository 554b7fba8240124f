package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

// envelope is the response shape shared by every endpoint.
type envelope map[string]interface{}

func success(w http.ResponseWriter, r *http.Request, status int, payload envelope) {
	body := envelope{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	render.Status(r, status)
	render.JSON(w, r, body)
}

func failure(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, envelope{"success": false, "message": message})
}

// writeError maps domain errors to HTTP statuses. Validation failures
// are client errors, conflicts map to 409, exhausted storage writes to
// 502, and missing records to 404.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *mediabackend.ValidationError
	if errors.As(err, &ve) {
		failure(w, r, http.StatusBadRequest, ve.Error())
		return
	}

	var cv *mediabackend.ConstraintViolation
	if errors.As(err, &cv) {
		failure(w, r, http.StatusConflict, cv.Error())
		return
	}

	var se *mediabackend.StorageError
	if errors.As(err, &se) {
		failure(w, r, http.StatusBadGateway, "failed to store uploaded file")
		return
	}

	if errors.Is(err, mediabackend.ErrNotFound) {
		failure(w, r, http.StatusNotFound, err.Error())
		return
	}

	failure(w, r, http.StatusInternalServerError, "internal server error")
}
