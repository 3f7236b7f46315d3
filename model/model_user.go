package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser       = "User"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

type User struct {
	ID                bson.ObjectID `json:"id"                bson:"_id,omitempty"`
	UserName          string        `json:"userName"          bson:"user_name"`
	Email             string        `json:"email"             bson:"email"`
	Password          string        `json:"-"                 bson:"password,omitempty"`
	CredentialAccount bool          `json:"credentialAccount" bson:"credential_account"`
	Gender            string        `json:"gender,omitempty"  bson:"gender,omitempty"`
	Age               int           `json:"age,omitempty"     bson:"age,omitempty"`
	Role              string        `json:"role"              bson:"role"`
	ProfilePicture    string        `json:"profilePicture,omitempty" bson:"profile_picture,omitempty"`
	Bio               string        `json:"bio,omitempty"     bson:"bio,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"         bson:"created_at"`
	UpdatedAt         time.Time     `json:"updatedAt"         bson:"updated_at"`
}
