package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
)

type DocumentService interface {
	UploadDocument(ctx context.Context, req dto.UploadDocumentRequest) (dto.UploadDocumentResponse, error)
	ListDocuments(ctx context.Context, req dto.ListDocumentsRequest) ([]dto.Document, error)
	CheckDocument(ctx context.Context, req dto.CheckDocumentRequest) (dto.CheckDocumentResponse, error)
	GetDocument(ctx context.Context, req dto.DocumentRequest) (dto.Document, error)
	GetDocumentFile(ctx context.Context, req dto.DocumentRequest) (dto.FileResponse, error)
	UpdateDocument(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error)
	DeleteDocument(ctx context.Context, req dto.DocumentRequest) (dto.Response, error)
}

type DocumentEndpoint struct {
	Upload endpoint.Endpoint
	List   endpoint.Endpoint
	Check  endpoint.Endpoint
	Get    endpoint.Endpoint
	File   endpoint.Endpoint
	Update endpoint.Endpoint
	Delete endpoint.Endpoint
}

func MakeDocumentEndpoint(service DocumentService) DocumentEndpoint {
	return DocumentEndpoint{
		Upload: makeDocumentEndpoint(service.UploadDocument),
		List:   makeDocumentEndpoint(service.ListDocuments),
		Check:  makeDocumentEndpoint(service.CheckDocument),
		Get:    makeDocumentEndpoint(service.GetDocument),
		File:   makeDocumentEndpoint(service.GetDocumentFile),
		Update: makeDocumentEndpoint(service.UpdateDocument),
		Delete: makeDocumentEndpoint(service.DeleteDocument),
	}
}

func makeDocumentEndpoint[Req, Resp any](call func(context.Context, Req) (Resp, error)) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*Req)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := call(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("document service: %w", err)
		}

		return resp, nil
	}
}
