// Package cursor encodes keyset-pagination cursors for newest-first listings
// (posts and comments both sort on created_at + _id).
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type payload struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

func Encode(t time.Time, id bson.ObjectID) string {
	b, _ := json.Marshal(payload{
		CreatedAt: t.UnixMilli(),
		ID:        id.Hex(),
	})
	return base64.StdEncoding.EncodeToString(b)
}

func Decode(s string) (time.Time, bson.ObjectID, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, bson.NilObjectID, err
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, bson.NilObjectID, err
	}

	oid, err := bson.ObjectIDFromHex(p.ID)
	if err != nil {
		return time.Time{}, bson.NilObjectID, err
	}

	return time.UnixMilli(p.CreatedAt).UTC(), oid, nil
}
