// Package blobstore abstracts the external blob storage collaborator used
// for profile images.
package blobstore

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// Store persists an uploaded object and returns its public URL. Failures are
// surfaced to the caller, never retried here.
type Store interface {
	Put(ctx context.Context, data io.Reader, filename string) (string, error)
}

// allowedExtensions are the only accepted image extensions.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedFile reports whether the filename carries an accepted image
// extension. The comparison is case-insensitive.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}
