package cursor

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := bson.NewObjectID()

	gotAt, gotID, err := Decode(Encode(at, id))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !gotAt.Equal(at) {
		t.Errorf("time = %v, want %v", gotAt, at)
	}
	if gotID != id {
		t.Errorf("id = %v, want %v", gotID, id)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"", "!!!", "bm90IGpzb24=", Encode(time.Now(), bson.ObjectID{})[:8]} {
		if _, _, err := Decode(bad); err == nil {
			t.Errorf("Decode(%q) should fail", bad)
		}
	}
}
