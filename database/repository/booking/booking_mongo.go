package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"barberbook/database"
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() *MongoBookingRepo {
	return &MongoBookingRepo{coll: database.DB().Collection("bookings")}
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}

// Update replaces an existing booking document.
func (repo *MongoBookingRepo) Update(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": booking.ID}
	res, err := repo.coll.UpdateOne(ctx, filter, bson.M{"$set": booking})
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns bookings matching the optional filter, ascending by start.
func (repo *MongoBookingRepo) List(filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.BarberID != "" {
		query["barber_id"] = filter.BarberID
	}
	if filter.Date != "" {
		query["start"] = dayRange(filter.Date)
	}

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// ListByUser returns a user's bookings, preferring the durable user id and
// falling back to legacy customer-name matches when the id yields nothing.
func (repo *MongoBookingRepo) ListByUser(userID string, nameFallbacks []string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for user %s: %w", userID, err)
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	if len(bookings) > 0 || len(nameFallbacks) == 0 {
		return bookings, nil
	}

	cursor, err = repo.coll.Find(ctx, bson.M{"customer_name": bson.M{"$in": nameFallbacks}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing legacy bookings for user %s: %w", userID, err)
	}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding legacy bookings: %w", err)
	}
	return bookings, nil
}

// ListUpcoming returns the user's next bookings in the given states.
func (repo *MongoBookingRepo) ListUpcoming(userID string, afterISO string, states []string, limit int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{
		"user_id": userID,
		"start":   bson.M{"$gte": afterISO},
		"status":  bson.M{"$in": states},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "start", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := repo.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing upcoming bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding upcoming bookings: %w", err)
	}
	return bookings, nil
}

// HasActiveAtStart reports whether a non-cancelled booking exists for the
// barber at exactly startISO.
func (repo *MongoBookingRepo) HasActiveAtStart(barberID, startISO, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{
		"barber_id": barberID,
		"start":     startISO,
		"status":    bson.M{"$nin": models.CancelledStates},
	}
	if excludeID != "" {
		query["id"] = bson.M{"$ne": excludeID}
	}
	count, err := repo.coll.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking slot occupancy: %w", err)
	}
	return count > 0, nil
}

// ActiveIntervals returns the blocked intervals for a barber on a date as
// minutes from that date's midnight. Rows with malformed timestamps are
// skipped, matching how they have always been ignored by availability.
func (repo *MongoBookingRepo) ActiveIntervals(barberID, date string) ([]models.Interval, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	query := bson.M{
		"barber_id": barberID,
		"start":     dayRange(date),
		"status":    bson.M{"$nin": models.CancelledStates},
	}
	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error fetching intervals: %w", err)
	}
	defer cursor.Close(ctx)

	midnight, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	var intervals []models.Interval
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		sdt, serr := time.Parse(models.DateTimeLayout, b.Start)
		edt, eerr := time.Parse(models.DateTimeLayout, b.End)
		if serr != nil || eerr != nil {
			continue
		}
		intervals = append(intervals, models.Interval{
			Start: int(sdt.Sub(midnight).Minutes()),
			End:   int(edt.Sub(midnight).Minutes()),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return intervals, nil
}

// CompleteExpired transitions every ended, non-terminal booking to completed
// in a single batch update.
func (repo *MongoBookingRepo) CompleteExpired(nowISO string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"end":    bson.M{"$lte": nowISO, "$gt": ""},
		"status": bson.M{"$nin": models.TerminalStates},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusCompleted}}
	res, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error completing expired bookings: %w", err)
	}
	return res.ModifiedCount, nil
}

// dayRange brackets the "YYYY-MM-DDTHH:MM" start strings falling on a date.
func dayRange(date string) bson.M {
	return bson.M{"$gte": date + "T00:00", "$lte": date + "T23:59"}
}
