package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID         bson.ObjectID   `json:"id"         bson:"_id,omitempty"`
	Title      string          `json:"title"      bson:"title"`
	Desc       string          `json:"desc"       bson:"desc"`
	Content    string          `json:"content"    bson:"content"`
	CreatorID  bson.ObjectID   `json:"creatorId"  bson:"creator_id"`
	Tags       []string        `json:"tags"       bson:"tags"`
	PreviewPix string          `json:"previewPix" bson:"preview_pix"`
	DetailPix  string          `json:"detailPix"  bson:"detail_pix"`
	Likes      []bson.ObjectID `json:"likes"      bson:"likes"`
	Published  bool            `json:"published"  bson:"published"`
	Comments   []bson.ObjectID `json:"comments"   bson:"comments"`
	CreatedAt  time.Time       `json:"createdAt"  bson:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt"  bson:"updated_at"`
}
