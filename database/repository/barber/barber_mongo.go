package barberRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBarberRepo implements BarberRepository using MongoDB.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

// NewMongoBarberRepo constructs a new instance of MongoBarberRepo.
func NewMongoBarberRepo() *MongoBarberRepo {
	return &MongoBarberRepo{coll: database.DB().Collection("barbers")}
}

// GetByID retrieves a barber document by ID.
func (repo *MongoBarberRepo) GetByID(barberID string) (*models.Barber, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var barber models.Barber
	if err := repo.coll.FindOne(ctx, bson.M{"id": barberID}).Decode(&barber); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching barber with id %s: %w", barberID, err)
	}
	return &barber, nil
}

// GetAll lists every barber document.
func (repo *MongoBarberRepo) GetAll() ([]models.Barber, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing barbers: %w", err)
	}
	defer cursor.Close(ctx)

	var barbers []models.Barber
	if err := cursor.All(ctx, &barbers); err != nil {
		return nil, fmt.Errorf("error decoding barbers: %w", err)
	}
	return barbers, nil
}
