package likes

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func sameMembers(a, b []bson.ObjectID) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		if !Has(b, x) {
			return false
		}
	}
	return true
}

func TestToggleAddsWhenAbsent(t *testing.T) {
	a, b, c := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()
	set := []bson.ObjectID{a, b}

	got := Toggle(set, c)
	if len(got) != 3 || !Has(got, c) {
		t.Fatalf("expected %v added, got %v", c, got)
	}
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	a, b := bson.NewObjectID(), bson.NewObjectID()
	set := []bson.ObjectID{a, b}

	got := Toggle(set, a)
	if len(got) != 1 || Has(got, a) || !Has(got, b) {
		t.Fatalf("expected only %v left, got %v", b, got)
	}
}

func TestTogglePairedApplicationRestoresSet(t *testing.T) {
	ids := []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()}
	actor := bson.NewObjectID()

	cases := [][]bson.ObjectID{
		nil,
		{ids[0]},
		ids,
		{ids[0], actor, ids[1]}, // actor already present
	}
	for _, set := range cases {
		got := Toggle(Toggle(set, actor), actor)
		if !sameMembers(got, set) {
			t.Errorf("double toggle changed membership: %v -> %v", set, got)
		}
	}
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	a := bson.NewObjectID()
	set := []bson.ObjectID{a, bson.NewObjectID()}
	before := append([]bson.ObjectID(nil), set...)

	_ = Toggle(set, a)
	_ = Toggle(set, bson.NewObjectID())
	if !sameMembers(set, before) {
		t.Fatalf("input mutated: %v -> %v", before, set)
	}
}

func TestToggleUpdateShape(t *testing.T) {
	actor := bson.NewObjectID()
	pipe := ToggleUpdate(actor)
	if len(pipe) != 1 {
		t.Fatalf("expected a single $set stage, got %d stages", len(pipe))
	}
	if pipe[0][0].Key != "$set" {
		t.Fatalf("expected $set stage, got %q", pipe[0][0].Key)
	}
}
