// Package storage manages uploaded media files on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"foodieframe/internal/middleware"
	"foodieframe/internal/models"

	"github.com/google/uuid"
)

// MediaKind distinguishes the two upload subtrees.
type MediaKind string

const (
	// MediaImage stores files under <root>/images.
	MediaImage MediaKind = "images"
	// MediaVideo stores files under <root>/videos.
	MediaVideo MediaKind = "videos"
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".webm": true, ".mkv": true,
}

// MediaStore saves, serves, and deletes uploaded files under a root directory.
type MediaStore struct {
	root string
}

// NewMediaStore creates the uploads directory tree and returns a store.
func NewMediaStore(root string) (*MediaStore, error) {
	for _, kind := range []MediaKind{MediaImage, MediaVideo} {
		if err := os.MkdirAll(filepath.Join(root, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &MediaStore{root: root}, nil
}

// Root returns the root directory of the store.
func (s *MediaStore) Root() string {
	return s.root
}

// KindForFilename classifies a filename by extension.
func KindForFilename(name string) (MediaKind, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExtensions[ext]:
		return MediaImage, nil
	case videoExtensions[ext]:
		return MediaVideo, nil
	default:
		return "", models.NewValidationError(fmt.Sprintf("unsupported file type: %s", ext))
	}
}

// sanitizeFilename strips any path components and characters that could
// escape the uploads tree.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." {
		name = "file"
	}
	return name
}

// Save writes the uploaded file under the kind subtree with a UUID prefix
// and returns the public URL path ("/uploads/<kind>/<uuid>_<name>").
func (s *MediaStore) Save(file *multipart.FileHeader) (string, error) {
	kind, err := KindForFilename(file.Filename)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s", uuid.New().String(), sanitizeFilename(file.Filename))
	dst := filepath.Join(s.root, string(kind), name)

	src, err := file.Open()
	if err != nil {
		return "", models.NewInternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", models.NewInternalError(fmt.Errorf("failed to store uploaded file: %w", err))
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", models.NewInternalError(fmt.Errorf("failed to write uploaded file: %w", err))
	}

	return fmt.Sprintf("/uploads/%s/%s", kind, name), nil
}

// Delete removes the file referenced by a public URL path. Missing files
// and external URLs are not errors.
func (s *MediaStore) Delete(urlPath, trigger string) {
	local, ok := s.localPath(urlPath)
	if !ok {
		return
	}
	err := os.Remove(local)
	switch {
	case err == nil:
		middleware.MediaFilesDeleted.WithLabelValues(trigger).Inc()
	case os.IsNotExist(err):
		// Already gone. Nothing to clean up.
	default:
		middleware.Logger.Warn("Failed to delete media file",
			"path", local, "error", err.Error())
	}
}

// localPath maps a public "/uploads/..." URL to a path inside the store.
// Returns false for external URLs or paths outside the uploads tree.
func (s *MediaStore) localPath(urlPath string) (string, bool) {
	const prefix = "/uploads/"
	if !strings.HasPrefix(urlPath, prefix) {
		return "", false
	}
	rel := strings.TrimPrefix(urlPath, prefix)
	parts := strings.SplitN(rel, "/", 2)
	if len(parts) != 2 {
		return "", false
	}
	kind, name := parts[0], parts[1]
	if kind != string(MediaImage) && kind != string(MediaVideo) {
		return "", false
	}
	name = filepath.Base(name)
	return filepath.Join(s.root, kind, name), true
}

// List returns the public URL paths of every stored file, by kind.
func (s *MediaStore) List() ([]string, error) {
	var urls []string
	for _, kind := range []MediaKind{MediaImage, MediaVideo} {
		entries, err := os.ReadDir(filepath.Join(s.root, string(kind)))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to list %s uploads: %w", kind, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			urls = append(urls, fmt.Sprintf("/uploads/%s/%s", kind, e.Name()))
		}
	}
	return urls, nil
}

// SweepOrphans deletes stored files whose URL is not in referenced, at most
// limit per call (limit <= 0 sweeps everything). Returns the deleted URL
// paths; callers re-run the sweep to drain a backlog larger than the limit.
func (s *MediaStore) SweepOrphans(referenced map[string]bool, limit int) ([]string, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	var deleted []string
	for _, url := range all {
		if limit > 0 && len(deleted) >= limit {
			break
		}
		if referenced[url] {
			continue
		}
		local, ok := s.localPath(url)
		if !ok {
			continue
		}
		if err := os.Remove(local); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			middleware.Logger.Warn("Failed to remove orphaned media file",
				"path", local, "error", err.Error())
			continue
		}
		middleware.MediaFilesDeleted.WithLabelValues("orphan_sweep").Inc()
		deleted = append(deleted, url)
	}
	return deleted, nil
}
