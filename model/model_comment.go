package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment.Likes holds user ObjectIDs, same as Post.Likes. The old schema kept
// display names here; ids survive renames, so both sets use the same key.
type Comment struct {
	ID          bson.ObjectID   `json:"id"          bson:"_id,omitempty"`
	Text        string          `json:"text"        bson:"text"`
	PostID      bson.ObjectID   `json:"postId"      bson:"post_id"`
	CommentorID bson.ObjectID   `json:"commentorId" bson:"commentor_id"`
	Likes       []bson.ObjectID `json:"likes"       bson:"likes"`
	CreatedAt   time.Time       `json:"createdAt"   bson:"created_at"`
}
