// Package validate holds the field rules from the document schemas as plain
// functions, so handlers validate before they transform or persist anything.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

const (
	UserNameMin    = 3
	UserNameMax    = 30
	PasswordMin    = 8
	BioMax         = 250
	TitleMin       = 5
	TitleMax       = 100
	DescMax        = 300
	MaxTags        = 10
	CommentTextMax = 500
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlRe   = regexp.MustCompile(`^(ftp|http|https)://[^ "]+$`)
)

func UserName(s string) error {
	s = strings.TrimSpace(s)
	if len(s) < UserNameMin || len(s) > UserNameMax {
		return errors.New("userName must be 3-30 characters")
	}
	return nil
}

func Email(s string) error {
	if !emailRe.MatchString(strings.TrimSpace(s)) {
		return errors.New("invalid email format")
	}
	return nil
}

func Password(s string) error {
	if len(strings.TrimSpace(s)) < PasswordMin {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func Gender(s string) error {
	switch s {
	case "Male", "Female", "Other":
		return nil
	}
	return errors.New("gender must be Male, Female or Other")
}

func Age(n int) error {
	if n < 0 {
		return errors.New("age must be a positive number")
	}
	return nil
}

func Bio(s string) error {
	if len(s) > BioMax {
		return errors.New("bio must be at most 250 characters")
	}
	return nil
}

func Role(s string) error {
	switch s {
	case "User", "Admin", "SuperAdmin":
		return nil
	}
	return errors.New("invalid role")
}

func PostTitle(s string) error {
	s = strings.TrimSpace(s)
	if len(s) < TitleMin || len(s) > TitleMax {
		return errors.New("title must be 5-100 characters")
	}
	return nil
}

func PostDesc(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("desc is required")
	}
	if len(s) > DescMax {
		return errors.New("desc must be at most 300 characters")
	}
	return nil
}

func PostContent(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("content is required")
	}
	return nil
}

func Tags(tags []string) error {
	if len(tags) > MaxTags {
		return errors.New("a post can have a maximum of 10 tags")
	}
	return nil
}

// PixURL accepts an empty string; an image URL is optional on posts.
func PixURL(s string) error {
	if s == "" || urlRe.MatchString(s) {
		return nil
	}
	return errors.New("invalid URL format")
}

func CommentText(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("comment text cannot be empty")
	}
	if len(s) > CommentTextMax {
		return errors.New("comment text must be at most 500 characters")
	}
	return nil
}
