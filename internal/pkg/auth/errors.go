package auth

import (
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
)

var (
	ErrNoToken      = exception.Unauthorized("No token provided")
	ErrMissingToken = exception.Unauthorized("Token missing in authorization header")
	ErrInvalidToken = exception.Unauthorized("Unauthorized: Invalid or expired token")
)
