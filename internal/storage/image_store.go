package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedImageType is returned when an uploaded file's extension is not
// in the allow-list.
var ErrUnsupportedImageType = errors.New("only jpg/png images are allowed")

var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// ImageStore persists uploaded images under a local directory and hands out
// public reference paths for them. The client-supplied filename is only used
// to sniff the extension, never as a storage path.
type ImageStore struct {
	dir        string
	publicPath string
}

// NewImageStore creates the upload directory if needed and returns a store
// serving references under publicPath (e.g. "/static/uploads").
func NewImageStore(dir, publicPath string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &ImageStore{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}, nil
}

// Dir returns the local directory files are written to.
func (s *ImageStore) Dir() string {
	return s.dir
}

// Save validates the original filename's extension, writes src under a fresh
// random name and returns the public reference path.
func (s *ImageStore) Save(originalFilename string, src io.Reader) (string, error) {
	ext, ok := extension(originalFilename)
	if !ok {
		return "", ErrUnsupportedImageType
	}

	filename := fmt.Sprintf("%s.%s", strings.ReplaceAll(uuid.NewString(), "-", ""), ext)

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return s.publicPath + "/" + filename, nil
}

// ValidateFilename reports whether the filename carries an allowed extension.
func ValidateFilename(filename string) bool {
	_, ok := extension(filename)
	return ok
}

func extension(filename string) (string, bool) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[idx+1:])
	return ext, allowedExtensions[ext]
}
