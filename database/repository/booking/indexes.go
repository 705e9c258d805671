package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the booking indexes. The partial unique index over
// (barber_id, start) for confirmed rows is what makes admission atomic per
// slot: two concurrent inserts for the same barber and start cannot both
// commit, whatever the validation path saw. Cancelled rows fall out of the
// index so a freed slot can be rebooked; completed rows are in the past and
// never contested.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("uniq_booking_id").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "barber_id", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetName("uniq_barber_start_confirmed").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.StatusConfirmed}),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetName("ix_bookings_user_start"),
		},
		{
			Keys: bson.D{{Key: "end", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().
				SetName("ix_bookings_end_status"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
