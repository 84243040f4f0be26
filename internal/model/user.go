package model

import "time"

// User is a registered account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Nickname     string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
