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

type PostRepository struct {
	posts    *mongo.Collection
	comments *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		posts:    db.Collection("posts"),
		comments: db.Collection("comments"),
	}
}

func (r *PostRepository) Insert(ctx context.Context, p model.Post) (model.Post, error) {
	now := time.Now().UTC()
	p.ID = bson.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.Likes = []bson.ObjectID{}
	p.Comments = []bson.ObjectID{}

	if _, err := r.posts.InsertOne(ctx, p); err != nil {
		return model.Post{}, err
	}
	return p, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	var p model.Post
	err := r.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	return p, err
}

// ListPublished returns published posts newest first, keyset-paginated on
// (created_at, _id).
func (r *PostRepository) ListPublished(ctx context.Context, curStr string, limit int64) ([]model.Post, *string, error) {
	filter := bson.M{"published": true}
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

	cur, err := r.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close(ctx)

	var items []model.Post
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

func (r *PostRepository) Update(ctx context.Context, id bson.ObjectID, fields bson.M) (model.Post, error) {
	fields["updated_at"] = time.Now().UTC()

	var p model.Post
	err := r.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	return p, err
}

// Delete removes the post, then its comments. The two deletes are separate
// document operations; a crash in between orphans the comments.
func (r *PostRepository) Delete(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	var p model.Post
	err := r.posts.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	if err != nil {
		return model.Post{}, err
	}

	if _, err := r.comments.DeleteMany(ctx, bson.M{"post_id": id}); err != nil {
		return model.Post{}, err
	}
	return p, nil
}

// ToggleLike flips the actor's membership in the like set as one atomic
// document update (no read-then-write) and returns the new state.
func (r *PostRepository) ToggleLike(ctx context.Context, id, actor bson.ObjectID) (model.Post, error) {
	var p model.Post
	err := r.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		likes.ToggleUpdate(actor),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	return p, err
}

// PushComment appends the comment id to the post's ordered comment list.
func (r *PostRepository) PushComment(ctx context.Context, postID, commentID bson.ObjectID) error {
	res, err := r.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PullComment drops a deleted comment's id from the post's comment list.
func (r *PostRepository) PullComment(ctx context.Context, postID, commentID bson.ObjectID) error {
	_, err := r.posts.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": commentID}})
	return err
}
