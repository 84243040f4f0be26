package user

import "easynote/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Password string
	Nickname string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateMeInput struct {
	Nickname  *string
	AvatarURL *string
}

type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// --- UseCase Outputs ---

// AuthOutput carries a fresh bearer token together with the account.
type AuthOutput struct {
	Token string
	User  model.User
}
