package security

import (
	"testing"
)

func TestPasswordHashing(t *testing.T) {
	pw := "correct horse battery"
	hash, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == pw {
		t.Fatal("hash should not equal plaintext")
	}
	if err := CheckPassword(hash, pw); err != nil {
		t.Errorf("check should succeed: %v", err)
	}
	if err := CheckPassword(hash, "wrongpw12"); err == nil {
		t.Errorf("expected failure for wrong password")
	}
}
