package account

import (
	"github.com/soheekimdev/backend-server-effect-sub000/core"
)

// Entity tags capabilities over accounts
type Entity struct{}

func (Entity) EntityName() string { return "account" }

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Username string `json:"username" validate:"max=64"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpInput is the data needed to register an account
type SignUpInput struct {
	Email    string
	Password string
	Username string
}

// SignInResult is returned on a successful sign-in
type SignInResult struct {
	Account     core.Account `json:"account"`
	AccessToken string       `json:"accessToken"`
}

// UpdateInput is a partial account update. nil fields are left unchanged.
type UpdateInput struct {
	Username        *string  `json:"username,omitempty" validate:"omitempty,max=64"`
	Bio             *string  `json:"bio,omitempty" validate:"omitempty,max=1024"`
	ProfileImageURL *string  `json:"profileImageUrl,omitempty" validate:"omitempty,url"`
	ExternalURLs    []string `json:"externalUrls,omitempty" validate:"omitempty,max=10,dive,url"`
	IsPrivate       *bool    `json:"isPrivate,omitempty"`
	Password        *string  `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	Role            *string  `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}
