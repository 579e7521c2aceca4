// Package s3 provides an uploader that PUTs files to pre-signed object
// storage URLs.
package s3

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/registry"
	"github.com/vk/modfactory/modules/http_client"
)

// Class names registered by this package.
const (
	ClassName     = "S3Uploader"
	InterfaceName = "IUploader"
)

// Result describes a finished upload.
type Result struct {
	Status      string
	Size        int64
	ContentType string
}

// FileUploader is the interface exposed under IUploader.
type FileUploader interface {
	Upload(ctx context.Context, sourcePath, uploadURL string) (*Result, error)
}

// Uploader uploads files with a single PUT request.
type Uploader struct {
	client http_client.HTTPClient
}

var _ FileUploader = (*Uploader)(nil)

// New returns an Uploader sending requests through client.
func New(client http_client.HTTPClient) *Uploader {
	return &Uploader{client: client}
}

// Upload sends the file at sourcePath to uploadURL. The content type is
// derived from the file extension.
func (u *Uploader) Upload(ctx context.Context, sourcePath, uploadURL string) (*Result, error) {
	logger := ctxlog.FromContext(ctx).With("action", "upload")

	file, err := os.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file '%s': %w", sourcePath, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file stats for '%s': %w", sourcePath, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 upload request: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(sourcePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = stat.Size()

	logger.Debug("Uploading file to S3", "source", sourcePath, "size", stat.Size(), "contentType", contentType)

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute S3 upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("S3 upload failed with status: %s", resp.Status)
	}

	logger.Debug("Successfully uploaded file", "status", resp.Status)
	return &Result{Status: resp.Status, Size: stat.Size(), ContentType: contentType}, nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the S3Uploader class to the HTTP extension module.
func (m *Module) Register(r *registry.Registry) {
	r.Module(config.HTTPExtension).RegisterClass(ClassName, InterfaceName, func() any {
		return New(http_client.New())
	})
}
