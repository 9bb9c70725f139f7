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

type ItineraryRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewItineraryRepository(db *mongo.Database) *ItineraryRepository {
	return &ItineraryRepository{
		coll: db.Collection(ItinerariesCollection),
		now:  time.Now,
	}
}

func (r *ItineraryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "startDate", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create itineraries index: %w", err)
	}

	return nil
}

func (r *ItineraryRepository) Create(ctx context.Context, itinerary dto.Itinerary) (dto.Itinerary, error) {
	ts := timestamp(r.now)
	itinerary.CreatedAt = ts
	itinerary.UpdatedAt = ts

	if itinerary.ID.IsZero() {
		itinerary.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, itinerary); err != nil {
		return dto.Itinerary{}, fmt.Errorf("failed to insert itinerary: %w", err)
	}

	return itinerary, nil
}

// ListByUser returns the itineraries of userID ordered by start date.
func (r *ItineraryRepository) ListByUser(ctx context.Context, userID string) ([]dto.Itinerary, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userId", Value: uid}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find itineraries: %w", err)
	}

	itineraries := []dto.Itinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, fmt.Errorf("failed to decode itineraries: %w", err)
	}

	return itineraries, nil
}

func (r *ItineraryRepository) FindByID(ctx context.Context, id, userID string) (dto.Itinerary, error) {
	filter, err := ownerFilter(id, userID)
	if err != nil {
		return dto.Itinerary{}, err
	}

	var itinerary dto.Itinerary
	if err := r.coll.FindOne(ctx, filter).Decode(&itinerary); err != nil {
		return dto.Itinerary{}, notFound(err)
	}

	return itinerary, nil
}

// Update overwrites the editable fields of an owned itinerary and returns the stored result.
func (r *ItineraryRepository) Update(ctx context.Context, id, userID string,
	fields dto.ItineraryFields) (dto.Itinerary, error) {
	filter, err := ownerFilter(id, userID)
	if err != nil {
		return dto.Itinerary{}, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "startPlace", Value: fields.StartPlace},
		{Key: "endPlace", Value: fields.EndPlace},
		{Key: "startDate", Value: fields.StartDate},
		{Key: "endDate", Value: fields.EndDate},
		{Key: "placesToVisit", Value: fields.PlacesToVisit},
		{Key: "flightDetails", Value: fields.FlightDetails},
		{Key: "hotelDetails", Value: fields.HotelDetails},
		{Key: "coPassengers", Value: fields.CoPassengers},
		{Key: "updatedAt", Value: timestamp(r.now)},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var itinerary dto.Itinerary
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&itinerary); err != nil {
		return dto.Itinerary{}, notFound(err)
	}

	return itinerary, nil
}

func (r *ItineraryRepository) Delete(ctx context.Context, id, userID string) error {
	filter, err := ownerFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
