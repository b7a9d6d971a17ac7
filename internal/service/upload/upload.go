package upload

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrUnsupported means the payload is not one of the accepted image formats.
var ErrUnsupported = errors.New("unsupported file type")

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Service stores profile photos on local disk and hands back the relative
// URL the router serves them under.
type Service struct {
	dir string
}

func NewService(dir string) (*Service, error) {
	const op = "service.upload.NewService"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Service{dir: dir}, nil
}

// SavePhoto sniffs the content type from the bytes themselves (the client's
// declared type is not trusted), stores the file under a random name and
// returns its URL path.
func (s *Service) SavePhoto(data []byte) (string, error) {
	const op = "service.upload.SavePhoto"

	ext, ok := extByType[http.DetectContentType(data)]
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrUnsupported)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return "/uploads/" + name, nil
}

func (s *Service) Dir() string {
	return s.dir
}
