package models

// Session is the client-held proof of authentication plus the cached profile.
// User is nil when nothing (or nothing decodable) is cached.
type Session struct {
	Token string
	User  *UserProfile
}

// LoginResult is the payload of the login mutation.
type LoginResult struct {
	Token   string       `json:"token"`
	Usuario *UserProfile `json:"usuario"`
}

// Credentials is what the login form submits.
type Credentials struct {
	Email    string `form:"email" validate:"required,formemail"`
	Password string `form:"password" validate:"required"`
}

// Registration is what the register form submits.
type Registration struct {
	Nombre   string `form:"nombre" validate:"required"`
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,formemail"`
	Password string `form:"password" validate:"required,min=6"`
}
