// File: database/repository/series/series.go
package seriesRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"practiva/database"
	"practiva/models"
)

// SeriesRepository persists treatment series. The series is mutated only
// through the completion cascade and progress updates.
type SeriesRepository interface {
	Create(ctx context.Context, series *models.TreatmentSeries) error
	GetByID(ctx context.Context, id string) (*models.TreatmentSeries, error)
	SetCurrentSession(ctx context.Context, id string, sessionNumber int) error
	MarkCompleted(ctx context.Context, id string, at time.Time) error
}

type mongoSeriesRepo struct {
	coll *mongo.Collection
}

// NewMongoSeriesRepo constructs a MongoDB SeriesRepository.
func NewMongoSeriesRepo() SeriesRepository {
	return &mongoSeriesRepo{coll: database.Collection("treatment_series")}
}

func (r *mongoSeriesRepo) Create(ctx context.Context, series *models.TreatmentSeries) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, series)
	return err
}

func (r *mongoSeriesRepo) GetByID(ctx context.Context, id string) (*models.TreatmentSeries, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var series models.TreatmentSeries
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&series); err != nil {
		return nil, err
	}
	return &series, nil
}

func (r *mongoSeriesRepo) SetCurrentSession(ctx context.Context, id string, sessionNumber int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"currentSession": sessionNumber}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSeriesRepo) MarkCompleted(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":      models.SeriesCompleted,
		"completedAt": at,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
