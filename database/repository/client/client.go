// File: database/repository/client/client.go
package clientRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"practiva/database"
	"practiva/models"
)

// ClientRepository persists the minimal client identity the booking path
// needs; the surrounding application owns the full record.
type ClientRepository interface {
	FindOrCreate(ctx context.Context, name, email, phone string) (*models.Client, error)
	GetByID(ctx context.Context, id string) (*models.Client, error)
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	return &mongoClientRepo{coll: database.Collection("clients")}
}

func (r *mongoClientRepo) FindOrCreate(ctx context.Context, name, email, phone string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var existing models.Client
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	client := &models.Client{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		return nil, err
	}
	return &client, nil
}
