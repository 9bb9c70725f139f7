package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/messaging"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/pdf"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/storage"
)

const pdfContentType = "application/pdf"

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary dto.Itinerary) (dto.Itinerary, error)
	ListByUser(ctx context.Context, userID string) ([]dto.Itinerary, error)
	FindByID(ctx context.Context, id, userID string) (dto.Itinerary, error)
	Update(ctx context.Context, id, userID string, fields dto.ItineraryFields) (dto.Itinerary, error)
	Delete(ctx context.Context, id, userID string) error
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (dto.User, error)
}

type ItineraryRenderer interface {
	Render(itinerary dto.Itinerary) ([]byte, error)
}

type SharePublisher interface {
	PublishShare(ctx context.Context, job messaging.ShareJob) error
}

type ItineraryService struct {
	itineraries ItineraryRepository
	users       UserFinder
	renderer    ItineraryRenderer
	publisher   SharePublisher
	now         func() time.Time
}

func NewItineraryService(itineraries ItineraryRepository, users UserFinder,
	renderer ItineraryRenderer, publisher SharePublisher) *ItineraryService {
	return &ItineraryService{
		itineraries: itineraries,
		users:       users,
		renderer:    renderer,
		publisher:   publisher,
		now:         time.Now,
	}
}

// CreateItinerary godoc
// @Summary      Create an itinerary
// @Tags         Itinerary
// @Security     BearerAuth
// @Param        request  body      dto.CreateItineraryRequest  true  "Itinerary"
// @Success      201      {object}  dto.ItineraryResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/itinerary [post]
func (s *ItineraryService) CreateItinerary(ctx context.Context,
	req dto.CreateItineraryRequest) (dto.ItineraryResponse, error) {
	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidID) {
			return dto.ItineraryResponse{}, ErrUserNotFound
		}
		return dto.ItineraryResponse{}, fmt.Errorf("find user: %w", err)
	}

	created, err := s.itineraries.Create(ctx, dto.Itinerary{
		UserID:          user.ID,
		Username:        user.Name,
		ItineraryFields: req.ItineraryFields,
	})
	if err != nil {
		return dto.ItineraryResponse{}, fmt.Errorf("create itinerary: %w", err)
	}

	slog.InfoContext(ctx, "itinerary created", slog.String("itinerary_id", created.ID.Hex()))

	return dto.ItineraryResponse{
		Message:   "Itinerary created successfully",
		Itinerary: created,
	}, nil
}

// ListItineraries returns every itinerary of the caller. An empty list is reported as not found.
func (s *ItineraryService) ListItineraries(ctx context.Context, req dto.CurrentUserRequest) ([]dto.Itinerary, error) {
	itineraries, err := s.itineraries.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}

	if len(itineraries) == 0 {
		return nil, ErrNoItineraries
	}

	return itineraries, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, req dto.ItineraryRequest) (dto.Itinerary, error) {
	itinerary, err := s.itineraries.FindByID(ctx, req.ID, req.UserID)
	if err != nil {
		return dto.Itinerary{}, itineraryError(err)
	}

	return itinerary, nil
}

// UpdateItinerary merges the partial update into the stored itinerary and validates the result
// before writing it back.
func (s *ItineraryService) UpdateItinerary(ctx context.Context,
	req dto.UpdateItineraryRequest) (dto.ItineraryResponse, error) {
	existing, err := s.itineraries.FindByID(ctx, req.ID, req.UserID)
	if err != nil {
		return dto.ItineraryResponse{}, itineraryError(err)
	}

	fields := req.ApplyTo(existing.ItineraryFields)
	if err := dto.ValidateItineraryFields(fields); err != nil {
		return dto.ItineraryResponse{}, err
	}

	updated, err := s.itineraries.Update(ctx, req.ID, req.UserID, fields)
	if err != nil {
		return dto.ItineraryResponse{}, itineraryError(err)
	}

	return dto.ItineraryResponse{
		Message:   "Itinerary updated successfully",
		Itinerary: updated,
	}, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, req dto.ItineraryRequest) (dto.Response, error) {
	if err := s.itineraries.Delete(ctx, req.ID, req.UserID); err != nil {
		return dto.Response{}, itineraryError(err)
	}

	slog.InfoContext(ctx, "itinerary deleted", slog.String("itinerary_id", req.ID))

	return dto.Response{Message: "Itinerary deleted successfully"}, nil
}

// DownloadItinerary godoc
// @Summary      Download an itinerary as PDF
// @Tags         Itinerary
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id   path      string  true  "Itinerary ID"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/itinerary/{id}/download [get]
func (s *ItineraryService) DownloadItinerary(ctx context.Context, req dto.ItineraryRequest) (dto.FileResponse, error) {
	itinerary, content, err := s.render(ctx, req)
	if err != nil {
		return dto.FileResponse{}, err
	}

	return dto.FileResponse{
		FileName:    pdf.FileName(itinerary),
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}

// ShareItinerary renders the itinerary and queues it for mail delivery to req.Email.
func (s *ItineraryService) ShareItinerary(ctx context.Context, req dto.ShareItineraryRequest) (dto.Response, error) {
	itinerary, content, err := s.render(ctx, dto.ItineraryRequest{ID: req.ID, UserID: req.UserID})
	if err != nil {
		return dto.Response{}, err
	}

	job := messaging.ShareJob{
		ItineraryID: itinerary.ID.Hex(),
		SharedBy:    itinerary.Username,
		Recipient:   req.Email,
		Subject:     fmt.Sprintf("Your Itinerary: %s to %s", itinerary.StartPlace, itinerary.EndPlace),
		Body:        pdf.ShareBody(itinerary),
		Attachment: messaging.Attachment{
			FileName:    pdf.FileName(itinerary),
			ContentType: pdfContentType,
			Content:     content,
		},
		SharedAt: s.now().UTC(),
	}

	if err := s.publisher.PublishShare(ctx, job); err != nil {
		return dto.Response{}, fmt.Errorf("share itinerary: %w", err)
	}

	slog.InfoContext(ctx, "itinerary shared", slog.String("itinerary_id", job.ItineraryID))

	return dto.Response{Message: "Itinerary shared successfully"}, nil
}

func (s *ItineraryService) render(ctx context.Context, req dto.ItineraryRequest) (dto.Itinerary, []byte, error) {
	itinerary, err := s.itineraries.FindByID(ctx, req.ID, req.UserID)
	if err != nil {
		return dto.Itinerary{}, nil, itineraryError(err)
	}

	content, err := s.renderer.Render(itinerary)
	if err != nil {
		return dto.Itinerary{}, nil, fmt.Errorf("render itinerary: %w", err)
	}

	return itinerary, content, nil
}

func itineraryError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrItineraryNotFound
	case errors.Is(err, storage.ErrInvalidID):
		return ErrInvalidItineraryID
	default:
		return fmt.Errorf("itinerary repository: %w", err)
	}
}
