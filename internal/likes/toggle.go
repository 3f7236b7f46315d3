// Package likes implements the like-toggle set semantics shared by posts and
// comments: one call adds the actor if absent, removes it if present.
package likes

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Toggle returns the new like set. Removal removes the matching entry, not a
// count, so membership stays exact even if the input carries a duplicate.
func Toggle(current []bson.ObjectID, actor bson.ObjectID) []bson.ObjectID {
	out := make([]bson.ObjectID, 0, len(current)+1)
	found := false
	for _, id := range current {
		if id == actor {
			found = true
			continue
		}
		out = append(out, id)
	}
	if !found {
		out = append(out, actor)
	}
	return out
}

// Has reports whether actor is in the like set.
func Has(current []bson.ObjectID, actor bson.ObjectID) bool {
	for _, id := range current {
		if id == actor {
			return true
		}
	}
	return false
}

// ToggleUpdate builds the aggregation-pipeline update that applies Toggle
// server-side in a single document operation. The add/remove branch is chosen
// against the stored array at write time, so concurrent toggles by different
// actors cannot lose each other's update.
func ToggleUpdate(actor bson.ObjectID) mongo.Pipeline {
	stored := bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{actor, stored}},
				bson.M{"$setDifference": bson.A{stored, bson.A{actor}}},
				bson.M{"$concatArrays": bson.A{stored, bson.A{actor}}},
			}},
		}}},
	}
}
