package transport

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/auth"
	httptransport "github.com/ijalalfrz/itinerary-planner-service/internal/pkg/transport/http"
)

const (
	idParam = "id"

	// room for the multipart boundaries and text fields around an upload
	multipartOverhead = 1 << 20
)

// decodeRegister accepts either a JSON body or a multipart form carrying an optional photo.
func decodeRegister(maxSize int64) httptransport.DecodeRequestFunc {
	return func(r *http.Request) (interface{}, error) {
		if !isMultipart(r) {
			return httptransport.DecodeRequest[dto.RegisterRequest](r)
		}

		req := &dto.RegisterRequest{}

		var err error
		if req.Photo, err = httptransport.FormFile(r, "photo", maxSize); err != nil {
			return nil, fmt.Errorf("decode photo: %w", err)
		}

		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")

		if err := req.Bind(r); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}

		return req, nil
	}
}

func decodeLogout(r *http.Request) (interface{}, error) {
	claims, ok := httptransport.ClaimsFromContext(r.Context())
	if !ok || claims.ExpiresAt == nil {
		return nil, auth.ErrInvalidToken
	}

	return &dto.LogoutRequest{
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func decodeCurrentUser(r *http.Request) (interface{}, error) {
	return &dto.CurrentUserRequest{UserID: httptransport.UserID(r)}, nil
}

func decodeCreateItinerary(r *http.Request) (interface{}, error) {
	req, err := httptransport.Bind[dto.CreateItineraryRequest](r)
	if err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	req.UserID = httptransport.UserID(r)

	return req, nil
}

func decodeItinerary(r *http.Request) (interface{}, error) {
	return &dto.ItineraryRequest{
		ID:     httptransport.URLParam(r, idParam),
		UserID: httptransport.UserID(r),
	}, nil
}

func decodeUpdateItinerary(r *http.Request) (interface{}, error) {
	req, err := httptransport.Bind[dto.UpdateItineraryRequest](r)
	if err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	req.ID = httptransport.URLParam(r, idParam)
	req.UserID = httptransport.UserID(r)

	return req, nil
}

func decodeShareItinerary(r *http.Request) (interface{}, error) {
	req, err := httptransport.Bind[dto.ShareItineraryRequest](r)
	if err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	req.ID = httptransport.URLParam(r, idParam)
	req.UserID = httptransport.UserID(r)

	return req, nil
}

func decodeUploadDocument(maxSize int64) httptransport.DecodeRequestFunc {
	return func(r *http.Request) (interface{}, error) {
		file, err := httptransport.FormFile(r, "document", maxSize)
		if err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}

		documentType, err := httptransport.FormValue(r, "documentType")
		if err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}

		return &dto.UploadDocumentRequest{
			UserID:       httptransport.UserID(r),
			DocumentType: documentType,
			File:         file,
		}, nil
	}
}

func decodeListDocuments(r *http.Request) (interface{}, error) {
	return &dto.ListDocumentsRequest{UserID: httptransport.UserID(r)}, nil
}

func decodeCheckDocument(r *http.Request) (interface{}, error) {
	return &dto.CheckDocumentRequest{
		UserID:       httptransport.UserID(r),
		DocumentType: r.URL.Query().Get("documentType"),
	}, nil
}

func decodeDocument(r *http.Request) (interface{}, error) {
	return &dto.DocumentRequest{
		ID:     httptransport.URLParam(r, idParam),
		UserID: httptransport.UserID(r),
	}, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
