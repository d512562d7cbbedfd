// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"practiva/models"
)

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.apptColl.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	// The filter asserts the status the caller validated against, so a
	// transition that lost a race misses instead of overwriting.
	var appt models.Appointment
	err := r.apptColl.FindOneAndUpdate(ctx, bson.M{"id": id, "status": from}, update, opts).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if r.apptColl.FindOne(ctx, bson.M{"id": id}).Err() == nil {
			return nil, ErrConflict
		}
		return nil, mongo.ErrNoDocuments
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) CreateTimeBlock(ctx context.Context, block *models.TimeBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.blockColl.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to insert time block: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) DeleteTimeBlock(ctx context.Context, practitionerID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.blockColl.DeleteOne(ctx, bson.M{"id": blockID, "practitionerId": practitionerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
