package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"blogserver/internal/cursor"
	"blogserver/internal/likes"
	"blogserver/model"
)

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection("comments")}
}

func (r *CommentRepository) Insert(ctx context.Context, postID, commentorID bson.ObjectID, text string) (model.Comment, error) {
	com := model.Comment{
		ID:          bson.NewObjectID(),
		Text:        text,
		PostID:      postID,
		CommentorID: commentorID,
		Likes:       []bson.ObjectID{},
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, com); err != nil {
		return model.Comment{}, err
	}
	return com, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	var com model.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&com)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, ErrNotFound
	}
	return com, err
}

// Exists reports whether this author already left the same text on the post.
// First comment wins; resubmissions are rejected at the handler.
func (r *CommentRepository) Exists(ctx context.Context, postID, commentorID bson.ObjectID, text string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{
		"text":         text,
		"post_id":      postID,
		"commentor_id": commentorID,
	}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, id bson.ObjectID, text string) (model.Comment, error) {
	var com model.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&com)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, ErrNotFound
	}
	return com, err
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	var com model.Comment
	err := r.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&com)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, ErrNotFound
	}
	return com, err
}

// ToggleLike flips the actor's membership in the like set atomically, same
// shape as the post toggle.
func (r *CommentRepository) ToggleLike(ctx context.Context, id, actor bson.ObjectID) (model.Comment, error) {
	var com model.Comment
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		likes.ToggleUpdate(actor),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&com)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, ErrNotFound
	}
	return com, err
}

// ListByPost returns a post's comments newest first with keyset pagination.
func (r *CommentRepository) ListByPost(ctx context.Context, postID bson.ObjectID, curStr string, limit int64) ([]model.Comment, *string, error) {
	filter := bson.M{"post_id": postID}
	if curStr != "" {
		at, id, err := cursor.Decode(curStr)
		if err != nil {
			return nil, nil, errors.New("invalid cursor")
		}
		filter["$or"] = []bson.M{
			{"created_at": bson.M{"$lt": at}},
			{"created_at": at, "_id": bson.M{"$lt": id}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit + 1)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close(ctx)

	var items []model.Comment
	if err := cur.All(ctx, &items); err != nil {
		return nil, nil, err
	}

	var next *string
	if int64(len(items)) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		s := cursor.Encode(last.CreatedAt, last.ID)
		next = &s
	}
	return items, next, nil
}
