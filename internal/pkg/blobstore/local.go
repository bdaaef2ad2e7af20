package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/peerapat/gradlink/internal/pkg/logger"
)

// LocalStore saves objects to the local filesystem.
type LocalStore struct {
	basePath string // The root directory where objects are stored
	baseURL  string // The base URL under which stored objects are served
}

// NewLocalStore creates a new LocalStore instance.
// basePath is the required directory path on the server.
// baseURL is prepended to returned object names to form the accessible URL.
func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStore{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Put writes the object under a unique name and returns its URL.
func (ls *LocalStore) Put(_ context.Context, data io.Reader, filename string) (string, error) {
	// Unique object name to prevent collisions; the original filename is
	// kept as a readable suffix
	objectName := uuid.New().String() + "_" + filepath.Base(filename)
	dstPath := filepath.Join(ls.basePath, objectName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, data); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write object content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save object content: %w", err)
	}

	url := strings.TrimRight(ls.baseURL, "/") + "/" + objectName
	logger.Info().Str("filename", filename).Str("saved_as", objectName).Str("url", url).Msg("Object saved")
	return url, nil
}
