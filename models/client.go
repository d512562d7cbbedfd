package models

import "time"

// Client is the person an appointment is booked for. The wider
// practice-management application owns the full client record; the
// scheduling engine only needs identity fields for booking.
type Client struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
