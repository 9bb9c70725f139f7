package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/logger"
)

const multipartMemory = 1 << 20

var ErrFileTooLarge = exception.BadRequest("File too large")

// UserID returns the id the Authenticate middleware stored for this request.
func UserID(r *http.Request) string {
	id, _ := logger.UserIDFromContext(r.Context())
	return id
}

func URLParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// FormFile reads an optional multipart file field. A missing field yields nil.
func FormFile(r *http.Request, field string, maxSize int64) (*dto.Upload, error) {
	if err := parseMultipart(r); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, exception.WithCause(http.StatusBadRequest, "invalid multipart form", err)
	}
	defer file.Close()

	if maxSize > 0 && header.Size > maxSize {
		return nil, ErrFileTooLarge
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file: %w", err)
	}

	return &dto.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}

// FormValue reads a multipart or urlencoded form field.
func FormValue(r *http.Request, field string) (string, error) {
	if err := parseMultipart(r); err != nil {
		return "", err
	}

	return r.FormValue(field), nil
}

func parseMultipart(r *http.Request) error {
	if r.MultipartForm != nil {
		return nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrFileTooLarge
		}
		return exception.WithCause(http.StatusBadRequest, "invalid multipart form", err)
	}

	return nil
}
