package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/auth"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/filestore"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/storage"
)

type UserRepository interface {
	Create(ctx context.Context, user dto.User) (dto.User, error)
	FindByEmail(ctx context.Context, email string) (dto.User, error)
	FindByID(ctx context.Context, id string) (dto.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID string) (string, *auth.Claims, error)
}

type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type BlobStore interface {
	DocumentPath(userID, documentType string) string
	PhotoPath(ext string) string
	Save(name string, content []byte) error
	Read(name string) ([]byte, error)
	Remove(name string) error
}

type AuthService struct {
	users   UserRepository
	tokens  TokenIssuer
	revoker TokenRevoker
	blobs   BlobStore
}

func NewAuthService(users UserRepository, tokens TokenIssuer, revoker TokenRevoker, blobs BlobStore) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		revoker: revoker,
		blobs:   blobs,
	}
}

// Register godoc
// @Summary      Register a user
// @Tags         Auth
// @Param        request  body      dto.RegisterRequest  true  "Account"
// @Success      201      {object}  dto.RegisterResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return dto.RegisterResponse{}, fmt.Errorf("register: %w", err)
	}

	user := dto.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if req.Photo != nil {
		ext, err := filestore.DetectImage(req.Photo.Content)
		if err != nil {
			return dto.RegisterResponse{}, ErrOnlyImages
		}

		user.PhotoPath = s.blobs.PhotoPath(ext)
		if err := s.blobs.Save(user.PhotoPath, req.Photo.Content); err != nil {
			return dto.RegisterResponse{}, fmt.Errorf("save profile photo: %w", err)
		}
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if user.PhotoPath != "" {
			removeBlob(ctx, s.blobs, user.PhotoPath)
		}

		if errors.Is(err, storage.ErrDuplicateKey) {
			return dto.RegisterResponse{}, ErrEmailTaken
		}
		return dto.RegisterResponse{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "user registered", slog.String("user_id", created.ID.Hex()))

	return dto.RegisterResponse{
		Message: "User registered successfully",
		User:    created,
	}, nil
}

// Login godoc
// @Summary      Log in
// @Tags         Auth
// @Param        request  body      dto.LoginRequest  true  "Credentials"
// @Success      200      {object}  dto.LoginResponse
// @Failure      401      {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, fmt.Errorf("find user: %w", err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("check password: %w", err)
	}

	if !ok {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, _, err := s.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("issue token: %w", err)
	}

	return dto.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// Logout revokes the presented token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, req dto.LogoutRequest) error {
	if err := s.revoker.Revoke(ctx, req.TokenID, req.ExpiresAt); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, req dto.CurrentUserRequest) (dto.User, error) {
	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidID) {
			return dto.User{}, ErrUserNotFound
		}
		return dto.User{}, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}

func removeBlob(ctx context.Context, blobs BlobStore, name string) {
	if err := blobs.Remove(name); err != nil {
		slog.WarnContext(ctx, "failed to remove orphaned file",
			slog.String("path", name), slog.String("error", err.Error()))
	}
}
