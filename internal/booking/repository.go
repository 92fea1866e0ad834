package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines per-document persistence operations for bookings.
type Repository interface {
	GetByIDAndLogin(ctx context.Context, bookingID, loginID string) (*Booking, error)
	GetByLoginAndDate(ctx context.Context, loginID, date string) (*Booking, error)
	ListByLogin(ctx context.Context, loginID string) ([]*Booking, error)
	Insert(ctx context.Context, b *Booking) error
	// UpdateFields applies a partial $set scoped by both booking identifier
	// and owning login, and reports whether any stored field changed.
	UpdateFields(ctx context.Context, bookingID, loginID string, fields map[string]any) (bool, error)
	Delete(ctx context.Context, bookingID string) error
	// ExistsForDate reports whether any booking references the given date.
	ExistsForDate(ctx context.Context, date string) (bool, error)
	// LatestID returns the identifier of the most recently created booking,
	// or empty string when the collection is empty.
	LatestID(ctx context.Context) (string, error)
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a Repository backed by the given collection.
func NewMongoRepository(coll *mongo.Collection) Repository {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) GetByIDAndLogin(ctx context.Context, bookingID, loginID string) (*Booking, error) {
	return r.findOne(ctx, bson.M{"bookingid": bookingID, "userloginid": loginID})
}

func (r *mongoRepository) GetByLoginAndDate(ctx context.Context, loginID, date string) (*Booking, error) {
	return r.findOne(ctx, bson.M{"userloginid": loginID, "bookingdate": date})
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*Booking, error) {
	var b Booking
	err := r.coll.FindOne(ctx, filter).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) ListByLogin(ctx context.Context, loginID string) ([]*Booking, error) {
	cur, err := r.coll.Find(ctx, bson.M{"userloginid": loginID})
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*Booking
	for cur.Next(ctx) {
		var b Booking
		if err := cur.Decode(&b); err != nil {
			return nil, fmt.Errorf("decode booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bookings cursor failed: %w", err)
	}
	return bookings, nil
}

func (r *mongoRepository) Insert(ctx context.Context, b *Booking) error {
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert booking failed: %w", err)
	}
	return nil
}

func (r *mongoRepository) UpdateFields(ctx context.Context, bookingID, loginID string, fields map[string]any) (bool, error) {
	filter := bson.M{"bookingid": bookingID, "userloginid": loginID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return false, fmt.Errorf("update booking failed: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoRepository) Delete(ctx context.Context, bookingID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"bookingid": bookingID})
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) ExistsForDate(ctx context.Context, date string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"bookingdate": date}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("check bookings for date failed: %w", err)
	}
	return true, nil
}

func (r *mongoRepository) LatestID(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var b Booking
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("find latest booking failed: %w", err)
	}
	return b.BookingID, nil
}
