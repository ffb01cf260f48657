package saved

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "saved_names"

// listLimit caps how many records a single list call returns.
const listLimit = 1000

// Repository stores saved names.
type Repository interface {
	Create(ctx context.Context, name, category string) (Name, error)
	List(ctx context.Context) ([]Name, error)
	Delete(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) (bool, error)
}

// MongoRepository is the MongoDB-backed Repository.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository returns a repository over db's saved_names collection.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(collectionName)}
}

// Create inserts a new record with a fresh id and UTC timestamp.
func (r *MongoRepository) Create(ctx context.Context, name, category string) (Name, error) {
	record := Name{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  category,
		Timestamp: time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return Name{}, errors.Join(ErrFailedToSave, err)
	}
	return record, nil
}

// List returns up to 1000 saved names in natural order.
func (r *MongoRepository) List(ctx context.Context) ([]Name, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	defer cursor.Close(ctx)

	names := make([]Name, 0)
	if err := cursor.All(ctx, &names); err != nil {
		return nil, errors.Join(ErrFailedToList, err)
	}
	return names, nil
}

// Delete removes the record with the given id.
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (r *MongoRepository) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	var record Name
	err := r.collection.FindOne(ctx, bson.D{{Key: "id", Value: id}}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, ErrNotFound
		}
		return false, err
	}

	next := !record.IsFavorite
	_, err = r.collection.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "is_favorite", Value: next}}}},
	)
	if err != nil {
		return false, err
	}
	return next, nil
}
