package service

import (
	"net/http"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
)

var (
	ErrUserNotFound       = exception.NotFound("User not found")
	ErrInvalidCredentials = exception.Unauthorized("Invalid email or password")
	ErrEmailTaken         = exception.ApplicationError{
		Message:    "User already exists",
		StatusCode: http.StatusConflict,
	}
	ErrOnlyImages = exception.BadRequest("Only JPEG and PNG images are allowed")

	ErrItineraryNotFound  = exception.NotFound("Itinerary not found or access denied")
	ErrNoItineraries      = exception.NotFound("No itineraries found")
	ErrInvalidItineraryID = exception.BadRequest("Invalid itinerary id")

	ErrDocumentNotFound     = exception.NotFound("Document not found")
	ErrInvalidDocumentID    = exception.BadRequest("Invalid document id")
	ErrDocumentTypeRequired = dto.ErrDocumentTypeRequired
	ErrOnlyPDF              = exception.BadRequest("Only PDF files are allowed")
)
