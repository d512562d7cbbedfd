// File: database/repository/availability/availability.go
package availabilityRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"practiva/database"
	"practiva/models"
)

// AvailabilityRepository persists one weekly availability record per
// practitioner.
type AvailabilityRepository interface {
	GetByPractitioner(ctx context.Context, practitionerID string) (*models.WeeklyAvailability, error)
	Upsert(ctx context.Context, wa *models.WeeklyAvailability) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{coll: database.Collection("availability")}
}

func (r *mongoAvailabilityRepo) GetByPractitioner(ctx context.Context, practitionerID string) (*models.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var wa models.WeeklyAvailability
	err := r.coll.FindOne(ctx, bson.M{"practitionerId": practitionerID}).Decode(&wa)
	if err != nil {
		return nil, err
	}
	return &wa, nil
}

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, wa *models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"practitionerId": wa.PractitionerID}
	update := bson.M{"$set": wa}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	return err
}
