package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ijalalfrz/itinerary-planner-service/internal/app/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{
		coll: db.Collection(DocumentsCollection),
		now:  time.Now,
	}
}

func (r *DocumentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "documentType", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create documents index: %w", err)
	}

	return nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc dto.Document) (dto.Document, error) {
	ts := timestamp(r.now)
	doc.CreatedAt = ts
	doc.UpdatedAt = ts

	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return dto.Document{}, fmt.Errorf("failed to insert document: %w", err)
	}

	return doc, nil
}

func (r *DocumentRepository) ListByUser(ctx context.Context, userID string) ([]dto.Document, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userId", Value: uid}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}

	docs := []dto.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	return docs, nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id, userID string) (dto.Document, error) {
	filter, err := ownerFilter(id, userID)
	if err != nil {
		return dto.Document{}, err
	}

	var doc dto.Document
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return dto.Document{}, notFound(err)
	}

	return doc, nil
}

// FindByType returns the most recent document of documentType owned by userID.
func (r *DocumentRepository) FindByType(ctx context.Context, userID, documentType string) (dto.Document, error) {
	uid, err := parseID(userID)
	if err != nil {
		return dto.Document{}, err
	}

	filter := bson.D{{Key: "userId", Value: uid}, {Key: "documentType", Value: documentType}}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var doc dto.Document
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		return dto.Document{}, notFound(err)
	}

	return doc, nil
}

func (r *DocumentRepository) ExistsByType(ctx context.Context, userID, documentType string) (bool, error) {
	uid, err := parseID(userID)
	if err != nil {
		return false, err
	}

	filter := bson.D{{Key: "userId", Value: uid}, {Key: "documentType", Value: documentType}}

	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to count documents: %w", err)
	}

	return n > 0, nil
}

// ReplaceFile points an existing document at a new blob.
func (r *DocumentRepository) ReplaceFile(ctx context.Context, doc dto.Document) (dto.Document, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "filePath", Value: doc.FilePath},
		{Key: "originalFileName", Value: doc.OriginalFileName},
		{Key: "size", Value: doc.Size},
		{Key: "updatedAt", Value: timestamp(r.now)},
	}}}

	filter := bson.D{{Key: "_id", Value: doc.ID}, {Key: "userId", Value: doc.UserID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated dto.Document
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return dto.Document{}, notFound(err)
	}

	return updated, nil
}

// Delete removes an owned document and returns what was stored so the blob can be cleaned up.
func (r *DocumentRepository) Delete(ctx context.Context, id, userID string) (dto.Document, error) {
	filter, err := ownerFilter(id, userID)
	if err != nil {
		return dto.Document{}, err
	}

	var doc dto.Document
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		return dto.Document{}, notFound(err)
	}

	return doc, nil
}
