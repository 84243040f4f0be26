package repository

// CreateUserOptions carries the fields needed to insert a user row.
type CreateUserOptions struct {
	Email        string
	PasswordHash string
	Nickname     string
}

// UpdateUserOptions carries partial profile updates; nil means keep.
type UpdateUserOptions struct {
	ID        string
	Nickname  *string
	AvatarURL *string
}
