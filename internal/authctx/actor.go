// Package authctx reads the verified identity the JWT middleware stored in
// the request Locals.
package authctx

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"blogserver/internal/policy"
	"blogserver/model"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "user_role"
)

// ActorFrom resolves the acting identity for the current request. ok is false
// for anonymous requests or malformed ids.
func ActorFrom(c *fiber.Ctx) (policy.Actor, bool) {
	v := c.Locals(LocalUserID)
	s, _ := v.(string)
	if s == "" {
		return policy.Actor{}, false
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return policy.Actor{}, false
	}

	role, _ := c.Locals(LocalRole).(string)
	if role == "" {
		role = model.RoleUser
	}
	return policy.Actor{ID: oid, Role: role}, true
}
