package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

// parseMultipartForm is capped a little above the upload limit so that
// an oversized file still reaches the validator, which reports it as a
// 400 rather than a truncated read.
const multipartMemoryLimit = mediabackend.MaxUploadSize + (1 << 20)

// fileFromForm extracts the single allowed file field from a multipart
// form. A file posted under any other field name is rejected; a missing
// file returns (nil, nil) so callers can treat the upload as optional.
func fileFromForm(r *http.Request, field string) (*mediabackend.FileUpload, error) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			// Plain form post, no file attached.
			return nil, nil
		}
		return nil, &mediabackend.ValidationError{Field: field, Reason: "malformed multipart form"}
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File) == 0 {
		return nil, nil
	}

	for name := range r.MultipartForm.File {
		if name != field {
			return nil, &mediabackend.ValidationError{
				Field:  name,
				Reason: "unexpected file field, expected " + field,
			}
		}
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	if len(headers) > 1 {
		return nil, &mediabackend.ValidationError{Field: field, Reason: "multiple files not allowed"}
	}
	header := headers[0]

	file, err := header.Open()
	if err != nil {
		return nil, &mediabackend.ValidationError{Field: field, Reason: "unreadable file"}
	}
	defer file.Close()

	// Read at most one byte over the limit; the validator rejects the
	// oversized payload from the declared size.
	data, err := io.ReadAll(io.LimitReader(file, mediabackend.MaxUploadSize+1))
	if err != nil {
		return nil, &mediabackend.ValidationError{Field: field, Reason: "unreadable file"}
	}

	return &mediabackend.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
