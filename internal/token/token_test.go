package token

import (
	"testing"
)

func TestIssueParseRoundTrip(t *testing.T) {
	secret := "test-secret"
	tok, err := Issue(secret, "68bf0f1a2a3c4d5e6f708091", "Admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := Parse(secret, tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UID != "68bf0f1a2a3c4d5e6f708091" {
		t.Errorf("uid = %q", claims.UID)
	}
	if claims.Role != "Admin" {
		t.Errorf("role = %q", claims.Role)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := Issue("secret-a", "uid", "User")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := Parse("secret-b", tok); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("secret", "not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
