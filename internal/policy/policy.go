// Package policy is the single authorization point for mutations. Every
// handler that edits, deletes or re-roles goes through Authorize so the
// ownership rules cannot drift between controllers.
package policy

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogserver/model"
)

type Action int

const (
	EditOwnContent Action = iota
	DeleteOwnContent
	ChangeRole
)

type Decision bool

const (
	Allow Decision = true
	Deny  Decision = false
)

// Actor is the identity carried by the verified session token.
type Actor struct {
	ID   bson.ObjectID
	Role string
}

// Authorize decides whether actor may perform action on a resource owned by
// ownerID. Content actions require exact ownership; there is no admin
// override on user-authored content. ChangeRole ignores ownerID and consults
// only the actor's role.
//
// Callers must resolve the resource before calling (missing resource is 404,
// not a policy decision).
func Authorize(action Action, actor Actor, ownerID bson.ObjectID) Decision {
	switch action {
	case EditOwnContent, DeleteOwnContent:
		if actor.ID == ownerID {
			return Allow
		}
		return Deny
	case ChangeRole:
		if actor.Role == model.RoleAdmin || actor.Role == model.RoleSuperAdmin {
			return Allow
		}
		return Deny
	}
	return Deny
}
