package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads stores submitted files on local disk under a single directory.
type Uploads struct {
	dir string
}

// NewUploads creates the directory if needed.
func NewUploads(dir string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Uploads{dir: dir}, nil
}

// Dir returns the directory files are written to.
func (u *Uploads) Dir() string {
	return u.dir
}

// Save streams the uploaded file to disk under a random name that keeps the
// original extension as given, and returns the slash-separated relative reference
// "<dir>/<name>".
func (u *Uploads) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	return u.SaveReader(fh.Filename, src)
}

// SaveReader is Save for an arbitrary reader.
func (u *Uploads) SaveReader(filename string, r io.Reader) (string, error) {
	ext := filepath.Ext(filepath.Base(filename))
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext

	dst, err := os.OpenFile(filepath.Join(u.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("close upload: %w", err)
	}

	return path.Join(filepath.ToSlash(u.dir), name), nil
}

// Remove deletes a file previously returned by Save. Used to roll back an
// upload whose database record could not be written.
func (u *Uploads) Remove(ref string) error {
	name := path.Base(ref)
	if err := os.Remove(filepath.Join(u.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
