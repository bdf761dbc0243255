package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"toolroom/config"
	"toolroom/internal/logger"

	"github.com/google/uuid"
)

// BlobStoreService persists uploaded evidence files (photos, signed
// checklists) under the configured upload directory and hands back the
// opaque URL path stored on plans and records.
type BlobStoreService struct {
	baseDir string
	log     logger.Logger
}

func NewBlobStoreService(config config.Config) (*BlobStoreService, error) {
	log := logger.New("blobStoreService")

	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		return nil, log.Err("failed to create upload directory", err, "dir", config.UploadDir)
	}

	return &BlobStoreService{
		baseDir: config.UploadDir,
		log:     log,
	}, nil
}

// Save writes the payload under a collision-free name and returns the public
// URL path. The original filename only contributes its extension; everything
// else is replaced so uploads cannot traverse or clobber.
func (s *BlobStoreService) Save(originalName string, payload []byte) (string, error) {
	log := s.log.Function("Save")

	if len(payload) == 0 {
		return "", log.ErrMsg("empty upload payload")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	fullPath := filepath.Join(s.baseDir, filename)

	if err := os.WriteFile(fullPath, payload, 0o644); err != nil {
		return "", log.Err("failed to write upload", err, "path", fullPath)
	}

	log.Info("Stored evidence file", "filename", filename, "bytes", len(payload))
	return "/uploads/" + filename, nil
}

// Remove deletes a previously saved file by its URL path. Missing files are
// not an error; the reference may already have been cleaned up.
func (s *BlobStoreService) Remove(urlPath string) error {
	log := s.log.Function("Remove")

	filename := filepath.Base(urlPath)
	if filename == "." || filename == "/" {
		return log.ErrMsg("invalid upload path")
	}

	fullPath := filepath.Join(s.baseDir, filename)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return log.Err("failed to remove upload", err, "path", fullPath)
	}

	return nil
}

// BaseDir exposes the storage root for the static file mount.
func (s *BlobStoreService) BaseDir() string {
	return s.baseDir
}
