package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByLogin(ctx context.Context, loginID string) (*User, error)
	Insert(ctx context.Context, u *User) error
}

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a Repository backed by the given collection.
func NewMongoRepository(coll *mongo.Collection) Repository {
	return &mongoRepository{coll: coll}
}

func (r *mongoRepository) GetByLogin(ctx context.Context, loginID string) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"userid": loginID}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by login failed: %w", err)
	}
	return &u, nil
}

func (r *mongoRepository) Insert(ctx context.Context, u *User) error {
	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		return fmt.Errorf("insert user failed: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}
