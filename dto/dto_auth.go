package dto

type RegisterReq struct {
	UserName       string `json:"userName" example:"blogbarista"`
	Email          string `json:"email"    example:"barista@example.com"`
	Password       string `json:"password" example:"espresso-machine-9"`
	Gender         string `json:"gender,omitempty" example:"Other"`
	Age            int    `json:"age,omitempty"    example:"27"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type LoginReq struct {
	Email    string `json:"email"    example:"barista@example.com"`
	Password string `json:"password" example:"espresso-machine-9"`
}

// CredentialReq registers or signs in a user authenticated by an external
// credential provider; no password is stored for these accounts.
type CredentialReq struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
}
