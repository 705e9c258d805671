// Package seed bootstraps demo data once at startup. Collections that
// already hold documents are left untouched, so there is exactly one source
// of truth afterwards: the database.
package seed

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Run seeds barbers, services and the default admin user into empty
// collections.
func Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db := database.DB()
	if err := seedBarbers(ctx, db.Collection("barbers")); err != nil {
		return err
	}
	if err := seedServices(ctx, db.Collection("services")); err != nil {
		return err
	}
	if err := seedAdminUser(ctx, db.Collection("users")); err != nil {
		return err
	}
	return nil
}

func isEmpty(ctx context.Context, coll *mongo.Collection) (bool, error) {
	count, err := coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, fmt.Errorf("error counting %s: %w", coll.Name(), err)
	}
	return count == 0, nil
}

func seedBarbers(ctx context.Context, coll *mongo.Collection) error {
	empty, err := isEmpty(ctx, coll)
	if err != nil || !empty {
		return err
	}

	weekdays := []models.WeeklyRule{
		{Day: 1, Open: "09:00", Close: "18:00"},
		{Day: 2, Open: "09:00", Close: "18:00"},
		{Day: 3, Open: "09:00", Close: "18:00"},
		{Day: 4, Open: "09:00", Close: "20:00"},
		{Day: 5, Open: "09:00", Close: "20:00"},
		{Day: 6, Open: "10:00", Close: "14:00"},
	}
	barbers := []models.Barber{
		{
			ID:        uuid.New().String(),
			Name:      "Marco Díaz",
			Specialty: "Classic cuts",
			IsActive:  true,
			WorkingHours: models.WorkingHours{
				Timezone: "Europe/Madrid",
				Weekly:   weekdays,
			},
		},
		{
			ID:        uuid.New().String(),
			Name:      "Luis Romero",
			Specialty: "Fades and beard work",
			IsActive:  true,
			WorkingHours: models.WorkingHours{
				Timezone: "Europe/Madrid",
				// Tuesday through Saturday.
				Weekly: weekdays[1:],
			},
		},
	}

	docs := make([]interface{}, len(barbers))
	for i := range barbers {
		docs[i] = barbers[i]
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error seeding barbers: %w", err)
	}
	return nil
}

func seedServices(ctx context.Context, coll *mongo.Collection) error {
	empty, err := isEmpty(ctx, coll)
	if err != nil || !empty {
		return err
	}

	services := []models.Service{
		{ID: uuid.New().String(), Name: "Haircut", Price: 18, DurationMinutes: 30, IsActive: true},
		{ID: uuid.New().String(), Name: "Beard trim", Price: 12, DurationMinutes: 15, IsActive: true},
		{ID: uuid.New().String(), Name: "Cut and beard", Price: 28, DurationMinutes: 45, IsActive: true},
		{ID: uuid.New().String(), Name: "Full grooming", Price: 40, DurationMinutes: 60, IsActive: true},
	}

	docs := make([]interface{}, len(services))
	for i := range services {
		docs[i] = services[i]
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error seeding services: %w", err)
	}
	return nil
}

func seedAdminUser(ctx context.Context, coll *mongo.Collection) error {
	count, err := coll.CountDocuments(ctx, bson.M{"username": "admin"})
	if err != nil {
		return fmt.Errorf("error checking admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := models.User{
		ID:        uuid.New().String(),
		Username:  "admin",
		Email:     "admin@example.com",
		Name:      "Administrator",
		Roles:     []string{"admin"},
		CreatedAt: time.Now(),
	}
	if _, err := coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("error seeding admin user: %w", err)
	}
	return nil
}
