package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AzureStore uploads objects to an Azure Blob Storage container using the
// Put Blob REST operation with a container-scoped SAS token.
type AzureStore struct {
	containerURL string // e.g. https://acct.blob.core.windows.net/profilepic
	sasToken     string // query string granting create/write on the container
	client       *http.Client
}

// NewAzureStore creates an AzureStore for the given container URL and SAS token.
func NewAzureStore(containerURL, sasToken string) *AzureStore {
	return &AzureStore{
		containerURL: strings.TrimRight(containerURL, "/"),
		sasToken:     strings.TrimPrefix(sasToken, "?"),
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Put uploads the object and returns its blob URL (without the SAS token).
func (s *AzureStore) Put(ctx context.Context, data io.Reader, filename string) (string, error) {
	objectName := uuid.New().String() + "_" + filepath.Base(filename)
	blobURL := s.containerURL + "/" + objectName

	requestURL := blobURL
	if s.sasToken != "" {
		requestURL = blobURL + "?" + s.sasToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, requestURL, data)
	if err != nil {
		return "", fmt.Errorf("azure: create request failed: %w", err)
	}
	req.Header.Set("x-ms-blob-type", "BlockBlob")
	req.Header.Set("x-ms-version", "2021-08-06")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("azure: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("azure: upload failed (%d): %s", resp.StatusCode, string(body))
	}

	return blobURL, nil
}
