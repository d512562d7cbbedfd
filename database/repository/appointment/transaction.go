// File: database/repository/appointment/transaction.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"practiva/models"
)

// overlapCount re-checks, inside the session, how many committed busy
// spans overlap the candidate. Appointments are checked with buffer
// dilation; time blocks obstruct exactly their own span.
func (r *mongoAppointmentRepo) overlapCount(sc mongo.SessionContext, practitionerID, excludeID string, startsAt, endsAt time.Time, bufferMinutes int) (int64, error) {
	pad := time.Duration(bufferMinutes) * time.Minute

	apptFilter := bson.M{
		"practitionerId": practitionerID,
		"status":         bson.M{"$in": blockingStatuses},
		"startsAt":       bson.M{"$lt": endsAt.Add(pad)},
		"endsAt":         bson.M{"$gt": startsAt.Add(-pad)},
	}
	if excludeID != "" {
		apptFilter["id"] = bson.M{"$ne": excludeID}
	}
	apptCount, err := r.apptColl.CountDocuments(sc, apptFilter)
	if err != nil {
		return 0, fmt.Errorf("overlap count on appointments failed: %w", err)
	}

	blockFilter := bson.M{
		"practitionerId": practitionerID,
		"startsAt":       bson.M{"$lt": endsAt},
		"endsAt":         bson.M{"$gt": startsAt},
	}
	blockCount, err := r.blockColl.CountDocuments(sc, blockFilter)
	if err != nil {
		return 0, fmt.Errorf("overlap count on time blocks failed: %w", err)
	}
	return apptCount + blockCount, nil
}

func (r *mongoAppointmentRepo) InsertConflictChecked(ctx context.Context, appt *models.Appointment, bufferMinutes int) error {
	client := r.apptColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.overlapCount(sc, appt.PractitionerID, "", appt.StartsAt, appt.EndsAt, bufferMinutes)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		if _, err := r.apptColl.InsertOne(sc, appt); err != nil {
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	return r.runTransaction(ctx, sess, txnFn)
}

func (r *mongoAppointmentRepo) UpdateTimesConflictChecked(ctx context.Context, id string, startsAt, endsAt time.Time, bufferMinutes int) (*models.Appointment, error) {
	client := r.apptColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var updated models.Appointment
	txnFn := func(sc mongo.SessionContext) error {
		var current models.Appointment
		if err := r.apptColl.FindOne(sc, bson.M{"id": id}).Decode(&current); err != nil {
			return err
		}
		// Re-checked inside the transaction: a cancellation that landed
		// after the caller's read must not be overwritten by the move.
		if current.Status.Terminal() {
			return ErrConflict
		}
		count, err := r.overlapCount(sc, current.PractitionerID, id, startsAt, endsAt, bufferMinutes)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		update := bson.M{"$set": bson.M{
			"startsAt":  startsAt,
			"endsAt":    endsAt,
			"updatedAt": time.Now().UTC(),
		}}
		if _, err := r.apptColl.UpdateOne(sc, bson.M{"id": id}, update); err != nil {
			return fmt.Errorf("update appointment times failed: %w", err)
		}
		if err := r.apptColl.FindOne(sc, bson.M{"id": id}).Decode(&updated); err != nil {
			return err
		}
		return nil
	}

	if err := r.runTransaction(ctx, sess, txnFn); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *mongoAppointmentRepo) runTransaction(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
