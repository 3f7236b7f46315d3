package policy

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"blogserver/model"
)

func TestOwnershipIsAbsolute(t *testing.T) {
	owner := bson.NewObjectID()
	other := bson.NewObjectID()

	for _, action := range []Action{EditOwnContent, DeleteOwnContent} {
		if Authorize(action, Actor{ID: owner, Role: model.RoleUser}, owner) != Allow {
			t.Errorf("owner should be allowed, action=%d", action)
		}
		if Authorize(action, Actor{ID: other, Role: model.RoleUser}, owner) != Deny {
			t.Errorf("non-owner should be denied, action=%d", action)
		}
		// Elevated roles get no override on user-authored content.
		if Authorize(action, Actor{ID: other, Role: model.RoleSuperAdmin}, owner) != Deny {
			t.Errorf("SuperAdmin must not override ownership, action=%d", action)
		}
	}
}

func TestChangeRoleRequiresElevatedRole(t *testing.T) {
	actor := Actor{ID: bson.NewObjectID()}

	for _, role := range []string{model.RoleUser, "", "Moderator", "admin"} {
		actor.Role = role
		if Authorize(ChangeRole, actor, bson.NilObjectID) != Deny {
			t.Errorf("role %q should be denied", role)
		}
	}
	for _, role := range []string{model.RoleAdmin, model.RoleSuperAdmin} {
		actor.Role = role
		if Authorize(ChangeRole, actor, bson.NilObjectID) != Allow {
			t.Errorf("role %q should be allowed", role)
		}
	}
}

func TestUnknownActionIsDenied(t *testing.T) {
	id := bson.NewObjectID()
	if Authorize(Action(99), Actor{ID: id, Role: model.RoleSuperAdmin}, id) != Deny {
		t.Error("unknown action should be denied")
	}
}
