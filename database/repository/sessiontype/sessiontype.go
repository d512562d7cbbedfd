// File: database/repository/sessiontype/sessiontype.go
package sessionTypeRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"practiva/database"
	"practiva/models"
)

// SessionTypeRepository persists the practitioner's bookable services.
type SessionTypeRepository interface {
	Create(ctx context.Context, st *models.SessionType) error
	GetByID(ctx context.Context, id string) (*models.SessionType, error)
	ListByPractitioner(ctx context.Context, practitionerID string) ([]models.SessionType, error)
	Delete(ctx context.Context, practitionerID, id string) error
}

type mongoSessionTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionTypeRepo constructs a MongoDB SessionTypeRepository.
func NewMongoSessionTypeRepo() SessionTypeRepository {
	return &mongoSessionTypeRepo{coll: database.Collection("session_types")}
}

func (r *mongoSessionTypeRepo) Create(ctx context.Context, st *models.SessionType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, st)
	return err
}

func (r *mongoSessionTypeRepo) GetByID(ctx context.Context, id string) (*models.SessionType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.SessionType
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *mongoSessionTypeRepo) ListByPractitioner(ctx context.Context, practitionerID string) ([]models.SessionType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"practitionerId": practitionerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []models.SessionType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *mongoSessionTypeRepo) Delete(ctx context.Context, practitionerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "practitionerId": practitionerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
