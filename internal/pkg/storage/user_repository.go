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

type UserRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		coll: db.Collection(UsersCollection),
		now:  time.Now,
	}
}

func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users index: %w", err)
	}

	return nil
}

func (r *UserRepository) Create(ctx context.Context, user dto.User) (dto.User, error) {
	ts := timestamp(r.now)
	user.CreatedAt = ts
	user.UpdatedAt = ts

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dto.User{}, ErrDuplicateKey
		}
		return dto.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (dto.User, error) {
	var user dto.User

	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		return dto.User{}, notFound(err)
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (dto.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return dto.User{}, err
	}

	var user dto.User
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&user); err != nil {
		return dto.User{}, notFound(err)
	}

	return user, nil
}
