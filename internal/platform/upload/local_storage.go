// Package upload stores idea attachments on the local filesystem.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"hackathon_backend/internal/feature/events/domain/entity"
	"hackathon_backend/internal/feature/events/usecase"
)

var (
	// ErrFileTooLarge is returned when the upload exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrUnsupportedType is returned for anything that is not a ppt, pptx or
	// pdf file.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// DefaultMaxSize is the upload ceiling applied when none is configured.
const DefaultMaxSize int64 = 5 << 20 // 5 MB

// allowedTypes maps accepted extensions to the MIME types clients send for them.
var allowedTypes = map[string][]string{
	".pdf":  {"application/pdf"},
	".ppt":  {"application/vnd.ms-powerpoint"},
	".pptx": {"application/vnd.openxmlformats-officedocument.presentationml.presentation"},
}

// LocalStorage saves validated uploads under a single directory with
// generated file names, keeping the original name as metadata only.
type LocalStorage struct {
	dir     string
	maxSize int64
}

var _ usecase.AttachmentStore = (*LocalStorage)(nil)

// NewLocalStorage creates a LocalStorage writing to dir.
// A non-positive maxSize falls back to DefaultMaxSize.
func NewLocalStorage(dir string, maxSize int64) *LocalStorage {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &LocalStorage{dir: dir, maxSize: maxSize}
}

// Validate checks the upload's size, extension and declared content type
// without touching the filesystem.
func (s *LocalStorage) Validate(fh *multipart.FileHeader) error {
	if fh.Size > s.maxSize {
		return ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	accepted, ok := allowedTypes[ext]
	if !ok {
		return ErrUnsupportedType
	}

	// Browsers always send a content type for file parts; when present it
	// must agree with the extension.
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		mediaType := strings.TrimSpace(strings.Split(ct, ";")[0])
		for _, a := range accepted {
			if mediaType == a {
				return nil
			}
		}
		return ErrUnsupportedType
	}
	return nil
}

// Save validates the upload and writes it to disk under a uuid-based name.
// The returned metadata carries the original file name, content type and
// size verbatim.
func (s *LocalStorage) Save(fh *multipart.FileHeader) (*entity.Attachment, error) {
	if err := s.Validate(fh); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(s.dir, uuid.NewString()+ext)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = allowedTypes[ext][0]
	}

	return &entity.Attachment{
		Path:        dst,
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
	}, nil
}
