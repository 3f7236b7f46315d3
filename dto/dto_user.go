package dto

// UpdateUserReq carries the self-service profile fields. Pointers distinguish
// "not sent" from zero values; role and password have their own endpoints.
type UpdateUserReq struct {
	UserName       *string `json:"userName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

type UpdatePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateRoleReq struct {
	ID      string `json:"id"      example:"66c6248b98c56c39f018e7d2"`
	NewRole string `json:"newRole" example:"Admin"`
}
