package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored account. PasswordHash never leaves the service.
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	PhotoPath    string             `json:"photo,omitempty" bson:"photoPath,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Upload is a file received in a multipart request.
type Upload struct {
	FileName    string
	ContentType string
	Content     []byte
}

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Photo    *Upload `json:"-"`
}

func (r *RegisterRequest) Bind(_ *http.Request) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if err := validateBadRequest(r); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (l *LoginRequest) Bind(_ *http.Request) error {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))

	if err := validateBadRequest(l); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterResponse struct {
	Message string `json:"msg"`
	User    User   `json:"user"`
}

// LogoutRequest carries the already verified token id and expiry.
type LogoutRequest struct {
	TokenID   string
	ExpiresAt time.Time
}

// CurrentUserRequest identifies the caller of an authenticated route.
type CurrentUserRequest struct {
	UserID string
}
