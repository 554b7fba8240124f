package mediabackend

import (
	"context"
	"errors"
	"time"
)

// MaxUploadSize is the ceiling for image payloads.
const MaxUploadSize = 5 << 20 // 5 MiB

// uploadAttempts is the total number of object-store write attempts per
// upload, including the first.
const uploadAttempts = 3

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// ValidateUpload gates a candidate payload against the image allow-list
// and size ceiling. It has no side effects.
func ValidateUpload(f *FileUpload) error {
	if f == nil {
		return &ValidationError{Field: "file", Reason: "missing upload"}
	}
	if _, ok := allowedImageTypes[f.ContentType]; !ok {
		return &ValidationError{Field: "file", Reason: "invalid file type"}
	}
	if f.Size > MaxUploadSize || int64(len(f.Data)) > MaxUploadSize {
		return &ValidationError{Field: "file", Reason: "file too large"}
	}
	return nil
}

// uploadAsset validates f, writes it to the object store under a fresh
// key in namespace, and returns the constructed public URL. The write is
// attempted up to uploadAttempts times; each failure is logged with the
// attempt number. Every error path returns before any record write.
func (s *service) uploadAsset(ctx context.Context, namespace string, f *FileUpload) (string, error) {
	if err := ValidateUpload(f); err != nil {
		return "", err
	}
	if len(f.Data) == 0 {
		return "", &StorageError{Op: "put", Err: errors.New("empty payload")}
	}
	if s.store == nil {
		return "", &StorageError{Op: "put", Err: errors.New("no object store configured")}
	}

	key := s.keys.Generate(namespace, f.Filename)

	var lastErr error
	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		if attempt > 1 && s.retryBackoff > 0 {
			delay := s.retryBackoff << (attempt - 2)
			t := time.NewTimer(delay)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
				return "", &StorageError{Op: "put", Key: key, Attempts: attempt - 1, Err: ctx.Err()}
			}
		}

		err := s.store.Put(ctx, key, f.Data, f.ContentType)
		if err == nil {
			return s.store.PublicURL(key), nil
		}
		lastErr = err
		s.logger.Warn("object store put failed",
			"key", key,
			"attempt", attempt,
			"error", err)
	}

	return "", &StorageError{Op: "put", Key: key, Attempts: uploadAttempts, Err: lastErr}
}
