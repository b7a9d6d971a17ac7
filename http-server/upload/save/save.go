package save

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"dropx/internal/service/upload"
	"github.com/go-chi/render"
)

const maxPhotoSize = 25 << 20 // 25 MB

type PhotoStore interface {
	SavePhoto(data []byte) (string, error)
}

// SavePhoto accepts a multipart image under the "photo" field and returns
// the relative URL it is served under.
func SavePhoto(log *slog.Logger, photos PhotoStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.upload.save.SavePhoto"

		r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize)

		file, _, err := r.FormFile("photo")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				http.Error(w, "File too large (max 25 MB)", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "No file uploaded", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				http.Error(w, "File too large (max 25 MB)", http.StatusRequestEntityTooLarge)
				return
			}
			log.Error("failed to read upload", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		url, err := photos.SavePhoto(data)
		if err != nil {
			if errors.Is(err, upload.ErrUnsupported) {
				http.Error(w, "Only JPG, PNG, GIF or WebP images are allowed", http.StatusUnsupportedMediaType)
				return
			}
			log.Error("failed to store photo", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]string{"url": url})
	}
}
