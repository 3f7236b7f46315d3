package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrNotFound maps to 404 at the handler boundary.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is a unique-index violation (code 11000).
	ErrDuplicate = errors.New("duplicate")
)

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true
	}
	// findAndModify reports the violation as a command error instead.
	var ce mongo.CommandError
	return errors.As(err, &ce) && ce.Code == 11000
}
