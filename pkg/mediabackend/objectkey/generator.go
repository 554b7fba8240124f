// Package objectkey generates storage keys for uploaded assets.
package objectkey

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generator defines the interface for storage key generation strategies.
type Generator interface {
	// Generate creates a storage key for an uploaded file. namespace is
	// an optional logical prefix ("thumbnails", "ads"); filename is only
	// consulted for its extension.
	Generate(namespace, filename string) string
}

// TimestampedGenerator produces keys of the form
// {namespace}/{unix-millis}-{uuid}{ext}. Two uploads of identical bytes
// receive different keys: records independently own their asset, so
// keys are deliberately not content-addressed.
type TimestampedGenerator struct{}

// NewTimestampedGenerator returns the default key generator.
func NewTimestampedGenerator() *TimestampedGenerator {
	return &TimestampedGenerator{}
}

func (g *TimestampedGenerator) Generate(namespace, filename string) string {
	ext := sanitizeExtension(filepath.Ext(filename))
	key := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New(), ext)
	if namespace == "" {
		return key
	}
	return namespace + "/" + key
}

// sanitizeExtension strips any character outside [A-Za-z0-9.] so a
// crafted filename cannot inject path separators or query syntax into
// the bucket namespace.
func sanitizeExtension(ext string) string {
	var b strings.Builder
	for _, r := range ext {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}
