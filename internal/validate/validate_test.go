package validate

import (
	"strings"
	"testing"
)

func TestEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "user.name+tag@example.org"} {
		if err := Email(ok); err != nil {
			t.Errorf("Email(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "nope", "a@b", "a b@c.co", "@x.co"} {
		if err := Email(bad); err == nil {
			t.Errorf("Email(%q) should fail", bad)
		}
	}
}

func TestUserNameBounds(t *testing.T) {
	if err := UserName("ab"); err == nil {
		t.Error("2 chars should fail")
	}
	if err := UserName(strings.Repeat("x", 31)); err == nil {
		t.Error("31 chars should fail")
	}
	if err := UserName("alice"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
}

func TestPostTitleBounds(t *testing.T) {
	if err := PostTitle("tiny"); err == nil {
		t.Error("4 chars should fail")
	}
	if err := PostTitle(strings.Repeat("t", 101)); err == nil {
		t.Error("101 chars should fail")
	}
	if err := PostTitle("Hello blog"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
}

func TestTagsLimit(t *testing.T) {
	if err := Tags(make([]string, 10)); err != nil {
		t.Errorf("10 tags should pass: %v", err)
	}
	if err := Tags(make([]string, 11)); err == nil {
		t.Error("11 tags should fail")
	}
}

func TestCommentTextBounds(t *testing.T) {
	if err := CommentText("   "); err == nil {
		t.Error("whitespace-only text should fail")
	}
	if err := CommentText(strings.Repeat("c", 501)); err == nil {
		t.Error("501 chars should fail")
	}
	if err := CommentText("hello"); err != nil {
		t.Errorf("valid text rejected: %v", err)
	}
}

func TestPixURL(t *testing.T) {
	if err := PixURL(""); err != nil {
		t.Errorf("empty URL is allowed: %v", err)
	}
	if err := PixURL("https://cdn.example.com/a.png"); err != nil {
		t.Errorf("valid URL rejected: %v", err)
	}
	if err := PixURL("notaurl"); err == nil {
		t.Error("bare word should fail")
	}
}

func TestRole(t *testing.T) {
	for _, ok := range []string{"User", "Admin", "SuperAdmin"} {
		if err := Role(ok); err != nil {
			t.Errorf("Role(%q) = %v", ok, err)
		}
	}
	if err := Role("root"); err == nil {
		t.Error("unknown role should fail")
	}
}
