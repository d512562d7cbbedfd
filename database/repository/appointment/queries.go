// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"practiva/models"
)

func (r *mongoAppointmentRepo) ListOccupied(ctx context.Context, practitionerID string, from, to time.Time) ([]models.OccupiedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	apptFilter := bson.M{
		"practitionerId": practitionerID,
		"status":         bson.M{"$in": blockingStatuses},
		"startsAt":       bson.M{"$lt": to},
		"endsAt":         bson.M{"$gt": from},
	}
	cursor, err := r.apptColl.Find(ctx, apptFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}

	occupied := make([]models.OccupiedInterval, 0, len(appts))
	for _, a := range appts {
		occupied = append(occupied, models.OccupiedInterval{
			StartsAt: a.StartsAt,
			EndsAt:   a.EndsAt,
			Buffered: true,
		})
	}

	blockFilter := bson.M{
		"practitionerId": practitionerID,
		"startsAt":       bson.M{"$lt": to},
		"endsAt":         bson.M{"$gt": from},
	}
	blockCursor, err := r.blockColl.Find(ctx, blockFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time blocks: %w", err)
	}
	defer blockCursor.Close(ctx)

	var blocks []models.TimeBlock
	if err := blockCursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding time blocks: %w", err)
	}
	for _, b := range blocks {
		occupied = append(occupied, models.OccupiedInterval{
			StartsAt: b.StartsAt,
			EndsAt:   b.EndsAt,
			Buffered: false,
		})
	}
	return occupied, nil
}

func (r *mongoAppointmentRepo) ListRange(ctx context.Context, practitionerID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"practitionerId": practitionerID,
		"startsAt":       bson.M{"$lt": to},
		"endsAt":         bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})
	cursor, err := r.apptColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListRecent(ctx context.Context, practitionerID string, limit int) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"practitionerId": practitionerID}
	opts := options.Find().
		SetSort(bson.D{{Key: "startsAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.apptColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
