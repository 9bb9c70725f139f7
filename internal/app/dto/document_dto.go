package dto

import (
	"strings"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNoFileUploaded       = exception.BadRequest("No file uploaded")
	ErrDocumentTypeRequired = exception.BadRequest("Document type is required")
)

type Document struct {
	ID               primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID           primitive.ObjectID `json:"userId" bson:"userId"`
	DocumentType     string             `json:"documentType" bson:"documentType"`
	FilePath         string             `json:"filePath" bson:"filePath"`
	OriginalFileName string             `json:"originalFileName" bson:"originalFileName"`
	Size             int64              `json:"size" bson:"size"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UploadDocumentRequest is used for both upload and replace.
type UploadDocumentRequest struct {
	UserID       string
	DocumentType string
	File         *Upload
}

func (u *UploadDocumentRequest) Validate() error {
	u.DocumentType = strings.TrimSpace(u.DocumentType)

	if u.File == nil || len(u.File.Content) == 0 {
		return ErrNoFileUploaded
	}

	if u.DocumentType == "" {
		return ErrDocumentTypeRequired
	}

	return nil
}

type DocumentRequest struct {
	ID     string
	UserID string
}

type ListDocumentsRequest struct {
	UserID string
}

type CheckDocumentRequest struct {
	UserID       string
	DocumentType string
}

type CheckDocumentResponse struct {
	DocumentType string `json:"documentType"`
	Exists       bool   `json:"exists"`
}

type UploadDocumentResponse struct {
	Message    string   `json:"msg"`
	DocumentID string   `json:"documentId"`
	Document   Document `json:"document"`
}

type DocumentResponse struct {
	Message  string   `json:"msg"`
	Document Document `json:"document"`
}
