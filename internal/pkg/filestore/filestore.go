package filestore

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const (
	documentsDir = "documents"
	photosDir    = "photos"
	filePerm     = 0o644
	dirPerm      = 0o755
)

var (
	ErrNotFound        = errors.New("file not found")
	ErrNotPDF          = errors.New("only PDF files are allowed")
	ErrUnsupportedType = errors.New("only JPEG and PNG images are allowed")
	ErrEmptyFile       = errors.New("file is empty")
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// Store keeps uploaded blobs under relative slash separated paths.
type Store struct {
	fs  afero.Fs
	now func() time.Time
}

func New(fs afero.Fs) *Store {
	return &Store{
		fs:  fs,
		now: time.Now,
	}
}

// NewOS roots a Store at dir on the local disk, creating dir when missing.
func NewOS(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	return New(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// DocumentPath returns documents/<userID>/<documentType>_<unixms>.pdf.
func (s *Store) DocumentPath(userID, documentType string) string {
	name := fmt.Sprintf("%s_%d.pdf", sanitize(documentType), s.now().UnixMilli())
	return path.Join(documentsDir, sanitize(userID), name)
}

func (s *Store) PhotoPath(ext string) string {
	return path.Join(photosDir, uuid.NewString()+ext)
}

func (s *Store) Save(name string, content []byte) error {
	if len(content) == 0 {
		return ErrEmptyFile
	}

	if err := s.fs.MkdirAll(path.Dir(name), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	if err := afero.WriteFile(s.fs, name, content, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

func (s *Store) Read(name string) ([]byte, error) {
	content, err := afero.ReadFile(s.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return content, nil
}

// Remove deletes name. A missing file is not an error.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}

	if err := s.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}

	return nil
}

// DetectPDF checks the content itself, not the client supplied content type.
func DetectPDF(content []byte) error {
	if len(content) == 0 {
		return ErrEmptyFile
	}

	if !mimetype.Detect(content).Is("application/pdf") {
		return ErrNotPDF
	}

	return nil
}

// DetectImage returns the file extension for a JPEG or PNG payload.
func DetectImage(content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrEmptyFile
	}

	mtype := mimetype.Detect(content)
	switch {
	case mtype.Is("image/jpeg"):
		return ".jpg", nil
	case mtype.Is("image/png"):
		return ".png", nil
	default:
		return "", ErrUnsupportedType
	}
}

func sanitize(s string) string {
	cleaned := unsafeChars.ReplaceAllString(s, "_")
	if cleaned == "" {
		return "file"
	}

	return cleaned
}
