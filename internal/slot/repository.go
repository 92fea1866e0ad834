package slot

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines per-document persistence operations for slots.
// Every operation is atomic on a single document; there are no
// multi-document transactions.
type Repository interface {
	GetByID(ctx context.Context, slotID string) (*Slot, error)
	GetByDate(ctx context.Context, date string) (*Slot, error)
	List(ctx context.Context) ([]*Slot, error)
	Insert(ctx context.Context, s *Slot) error
	// UpdateFields applies a partial $set by slot identifier and reports
	// whether any stored field actually changed.
	UpdateFields(ctx context.Context, slotID string, fields map[string]any) (bool, error)
	// ReplaceByDate writes the full slot document back by date. Used by the
	// capacity ledger's read-modify-write cycle.
	ReplaceByDate(ctx context.Context, date string, s *Slot) error
	Delete(ctx context.Context, slotID string) error
	// LatestID returns the identifier of the most recently created slot,
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

func (r *mongoRepository) GetByID(ctx context.Context, slotID string) (*Slot, error) {
	return r.findOne(ctx, bson.M{"slotid": slotID})
}

func (r *mongoRepository) GetByDate(ctx context.Context, date string) (*Slot, error) {
	return r.findOne(ctx, bson.M{"slotdate": date})
}

func (r *mongoRepository) findOne(ctx context.Context, filter bson.M) (*Slot, error) {
	var s Slot
	err := r.coll.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get slot failed: %w", err)
	}
	return &s, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*Slot, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list slots failed: %w", err)
	}
	defer cur.Close(ctx)

	var slots []*Slot
	for cur.Next(ctx) {
		var s Slot
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode slot failed: %w", err)
		}
		slots = append(slots, &s)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list slots cursor failed: %w", err)
	}
	return slots, nil
}

func (r *mongoRepository) Insert(ctx context.Context, s *Slot) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert slot failed: %w", err)
	}
	return nil
}

func (r *mongoRepository) UpdateFields(ctx context.Context, slotID string, fields map[string]any) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"slotid": slotID}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return false, fmt.Errorf("update slot failed: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoRepository) ReplaceByDate(ctx context.Context, date string, s *Slot) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"slotdate": date}, s)
	if err != nil {
		return fmt.Errorf("replace slot failed: %w", err)
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, slotID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"slotid": slotID})
	if err != nil {
		return fmt.Errorf("delete slot failed: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) LatestID(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var s Slot
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("find latest slot failed: %w", err)
	}
	return s.SlotID, nil
}
