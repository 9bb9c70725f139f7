package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/filestore"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc dto.Document) (dto.Document, error)
	ListByUser(ctx context.Context, userID string) ([]dto.Document, error)
	FindByID(ctx context.Context, id, userID string) (dto.Document, error)
	FindByType(ctx context.Context, userID, documentType string) (dto.Document, error)
	ExistsByType(ctx context.Context, userID, documentType string) (bool, error)
	ReplaceFile(ctx context.Context, doc dto.Document) (dto.Document, error)
	Delete(ctx context.Context, id, userID string) (dto.Document, error)
}

type DocumentService struct {
	documents DocumentRepository
	blobs     BlobStore
}

func NewDocumentService(documents DocumentRepository, blobs BlobStore) *DocumentService {
	return &DocumentService{
		documents: documents,
		blobs:     blobs,
	}
}

// UploadDocument godoc
// @Summary      Upload a travel document
// @Tags         Document
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Param        document      formData  file    true  "PDF file"
// @Param        documentType  formData  string  true  "Document type"
// @Success      201  {object}  dto.UploadDocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/document/upload [post]
func (s *DocumentService) UploadDocument(ctx context.Context,
	req dto.UploadDocumentRequest) (dto.UploadDocumentResponse, error) {
	if err := validateUpload(&req); err != nil {
		return dto.UploadDocumentResponse{}, err
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return dto.UploadDocumentResponse{}, ErrUserNotFound
	}

	filePath := s.blobs.DocumentPath(req.UserID, req.DocumentType)
	if err := s.blobs.Save(filePath, req.File.Content); err != nil {
		return dto.UploadDocumentResponse{}, fmt.Errorf("save document: %w", err)
	}

	doc, err := s.documents.Create(ctx, dto.Document{
		UserID:           userID,
		DocumentType:     req.DocumentType,
		FilePath:         filePath,
		OriginalFileName: req.File.FileName,
		Size:             int64(len(req.File.Content)),
	})
	if err != nil {
		removeBlob(ctx, s.blobs, filePath)
		return dto.UploadDocumentResponse{}, fmt.Errorf("create document: %w", err)
	}

	slog.InfoContext(ctx, "document uploaded",
		slog.String("document_id", doc.ID.Hex()),
		slog.String("document_type", doc.DocumentType),
		slog.Int64("size", doc.Size),
	)

	return dto.UploadDocumentResponse{
		Message:    "Document uploaded successfully",
		DocumentID: doc.ID.Hex(),
		Document:   doc,
	}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req dto.ListDocumentsRequest) ([]dto.Document, error) {
	docs, err := s.documents.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

func (s *DocumentService) CheckDocument(ctx context.Context,
	req dto.CheckDocumentRequest) (dto.CheckDocumentResponse, error) {
	if req.DocumentType == "" {
		return dto.CheckDocumentResponse{}, ErrDocumentTypeRequired
	}

	exists, err := s.documents.ExistsByType(ctx, req.UserID, req.DocumentType)
	if err != nil {
		return dto.CheckDocumentResponse{}, fmt.Errorf("check document: %w", err)
	}

	return dto.CheckDocumentResponse{
		DocumentType: req.DocumentType,
		Exists:       exists,
	}, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, req dto.DocumentRequest) (dto.Document, error) {
	doc, err := s.documents.FindByID(ctx, req.ID, req.UserID)
	if err != nil {
		return dto.Document{}, documentError(err)
	}

	return doc, nil
}

func (s *DocumentService) GetDocumentFile(ctx context.Context, req dto.DocumentRequest) (dto.FileResponse, error) {
	doc, err := s.documents.FindByID(ctx, req.ID, req.UserID)
	if err != nil {
		return dto.FileResponse{}, documentError(err)
	}

	content, err := s.blobs.Read(doc.FilePath)
	if err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return dto.FileResponse{}, ErrDocumentNotFound
		}
		return dto.FileResponse{}, fmt.Errorf("read document: %w", err)
	}

	name := doc.OriginalFileName
	if name == "" {
		name = path.Base(doc.FilePath)
	}

	return dto.FileResponse{
		FileName:    name,
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}

// UpdateDocument replaces the file of the caller's latest document of req.DocumentType.
func (s *DocumentService) UpdateDocument(ctx context.Context,
	req dto.UploadDocumentRequest) (dto.DocumentResponse, error) {
	if err := validateUpload(&req); err != nil {
		return dto.DocumentResponse{}, err
	}

	existing, err := s.documents.FindByType(ctx, req.UserID, req.DocumentType)
	if err != nil {
		return dto.DocumentResponse{}, documentError(err)
	}

	filePath := s.blobs.DocumentPath(req.UserID, req.DocumentType)
	if err := s.blobs.Save(filePath, req.File.Content); err != nil {
		return dto.DocumentResponse{}, fmt.Errorf("save document: %w", err)
	}

	oldPath := existing.FilePath
	existing.FilePath = filePath
	existing.OriginalFileName = req.File.FileName
	existing.Size = int64(len(req.File.Content))

	updated, err := s.documents.ReplaceFile(ctx, existing)
	if err != nil {
		removeBlob(ctx, s.blobs, filePath)
		return dto.DocumentResponse{}, documentError(err)
	}

	if oldPath != filePath {
		removeBlob(ctx, s.blobs, oldPath)
	}

	return dto.DocumentResponse{
		Message:  "Document updated successfully",
		Document: updated,
	}, nil
}

func (s *DocumentService) DeleteDocument(ctx context.Context, req dto.DocumentRequest) (dto.Response, error) {
	doc, err := s.documents.Delete(ctx, req.ID, req.UserID)
	if err != nil {
		return dto.Response{}, documentError(err)
	}

	removeBlob(ctx, s.blobs, doc.FilePath)

	return dto.Response{Message: "Document deleted successfully"}, nil
}

func validateUpload(req *dto.UploadDocumentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := filestore.DetectPDF(req.File.Content); err != nil {
		return ErrOnlyPDF
	}

	return nil
}

func documentError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrDocumentNotFound
	case errors.Is(err, storage.ErrInvalidID):
		return ErrInvalidDocumentID
	default:
		return fmt.Errorf("document repository: %w", err)
	}
}
