package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogserver/model"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Insert stores a new user. Duplicate user_name/email trip the unique
// indexes and come back as ErrDuplicate.
func (r *UserRepository) Insert(ctx context.Context, u model.User) (model.User, error) {
	now := time.Now().UTC()
	u.ID = bson.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if isDuplicateKey(err) {
			return model.User{}, ErrDuplicate
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// FindPublicByID omits the password hash at the query level, matching the
// public read contract.
func (r *UserRepository) FindPublicByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"password": 0})).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// UpdateFields applies a whitelisted field set and returns the new document.
func (r *UserRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.M) (model.User, error) {
	fields["updated_at"] = time.Now().UTC()

	var u model.User
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"password": 0}),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if isDuplicateKey(err) {
		return model.User{}, ErrDuplicate
	}
	return u, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": hash, "updated_at": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id bson.ObjectID, role string) (model.User, error) {
	return r.UpdateFields(ctx, id, bson.M{"role": role})
}

// Delete removes the user and returns the removed document.
func (r *UserRepository) Delete(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var u model.User
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id},
		options.FindOneAndDelete().SetProjection(bson.M{"password": 0})).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	return u, err
}
