package upload

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"portfolio_admin/internal/storage"
)

const (
	DefaultMaxFiles    = 10
	DefaultMaxFileSize = 5 << 20 // 5 MB

	imageMIMEPrefix = "image/"
	maxRandomSuffix = 1_000_000_000
)

var (
	ErrTooManyFiles = errors.New("too many files")
	ErrFileTooLarge = errors.New("file too large")
	ErrNotImage     = errors.New("only image files are allowed")
)

// Uploader checks multipart image files and writes them to storage.
type Uploader struct {
	store       storage.Storage
	maxFiles    int
	maxFileSize int64

	now    func() time.Time
	suffix func() int
}

func New(store storage.Storage) *Uploader {
	return &Uploader{
		store:       store,
		maxFiles:    DefaultMaxFiles,
		maxFileSize: DefaultMaxFileSize,
		now:         time.Now,
		suffix:      func() int { return rand.Intn(maxRandomSuffix + 1) },
	}
}

// Save stores files in order and returns their server-relative paths.
// Every file is checked before the first write, so a rejected file leaves
// nothing on disk. A failed write removes the files already written.
func (u *Uploader) Save(ctx context.Context, field string, files []*multipart.FileHeader) ([]string, error) {
	if err := u.check(files); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	keys := make([]string, 0, len(files))
	for _, fh := range files {
		key := u.filename(field, fh.Filename)
		url, err := u.write(ctx, key, fh)
		if err != nil {
			for _, k := range keys {
				_ = u.store.Delete(ctx, k)
			}
			return nil, err
		}
		keys = append(keys, key)
		paths = append(paths, url)
	}
	return paths, nil
}

func (u *Uploader) check(files []*multipart.FileHeader) error {
	if len(files) > u.maxFiles {
		return fmt.Errorf("%w: %d > %d", ErrTooManyFiles, len(files), u.maxFiles)
	}
	for _, fh := range files {
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), imageMIMEPrefix) {
			return fmt.Errorf("%w: %s", ErrNotImage, fh.Filename)
		}
		if fh.Size > u.maxFileSize {
			return fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, fh.Filename, fh.Size)
		}
	}
	return nil
}

func (u *Uploader) write(ctx context.Context, key string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return u.store.Save(ctx, key, f)
}

// filename builds <field>-<unix ms>-<random>.<ext>.
func (u *Uploader) filename(field, original string) string {
	ext := filepath.Ext(filepath.Base(original))
	return fmt.Sprintf("%s-%d-%d%s", field, u.now().UnixMilli(), u.suffix(), ext)
}
