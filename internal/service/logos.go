package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/octobees/linecard/api/internal/entity"
	"github.com/octobees/linecard/api/internal/repository"
)

var (
	// ErrUploadFieldsMissing indicates filename or data was absent.
	ErrUploadFieldsMissing = errors.New("filename and data are required")
	// ErrFileTooLarge indicates the decoded payload exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file too large (max 2MB)")
	// ErrInvalidFileData indicates the payload is not valid base64.
	ErrInvalidFileData = errors.New("data must be base64 encoded")
)

// maxLogoBytes is the decoded size ceiling for uploaded logos.
const maxLogoBytes = 2 << 20

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9-_.]`)

// LogosService stores uploaded logo images and serves them back.
type LogosService struct {
	repo          repository.LogosRepository
	publicBaseURL string
}

// NewLogosService creates a logo store with the given public base URL.
// An empty base URL yields relative logo URLs, which suit same-origin hosting.
func NewLogosService(repo repository.LogosRepository, publicBaseURL string) *LogosService {
	return &LogosService{
		repo:          repo,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload validates and stores a base64 encoded image, returning its public URL.
// The size ceiling is enforced before the store is contacted.
func (s *LogosService) Upload(ctx context.Context, filename, data string) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" || data == "" {
		return "", ErrUploadFieldsMissing
	}

	// A payload whose encoded form already exceeds the ceiling cannot decode
	// under it; reject before allocating the decoded buffer. DecodedLen
	// overestimates by up to two padding bytes.
	if base64.StdEncoding.DecodedLen(len(data)) > maxLogoBytes+2 {
		return "", ErrFileTooLarge
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", ErrInvalidFileData
	}
	if len(decoded) > maxLogoBytes {
		return "", ErrFileTooLarge
	}

	name := objectName(filename, time.Now().UnixMilli())
	logo := &entity.LogoObject{
		Name:        name,
		ContentType: contentTypeFromFilename(filename),
		Data:        decoded,
	}

	if err := s.repo.Put(ctx, logo); err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}

	return s.publicBaseURL + "/logos/" + url.PathEscape(name), nil
}

// Fetch returns a stored logo by object name.
func (s *LogosService) Fetch(ctx context.Context, name string) (*entity.LogoObject, error) {
	return s.repo.Get(ctx, name)
}

// objectName derives a collision-resistant storage name: the sanitized
// lowercased base name plus a timestamp, keeping the original extension.
func objectName(filename string, ts int64) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = unsafeNameChars.ReplaceAllString(strings.ToLower(base), "-")
	if base == "" {
		base = "logo"
	}
	if ext == "" {
		return fmt.Sprintf("%s-%d", base, ts)
	}
	return fmt.Sprintf("%s-%d.%s", base, ts, ext)
}

func contentTypeFromFilename(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	case "svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
