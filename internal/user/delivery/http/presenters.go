package http

import (
	"time"

	"easynote/internal/model"
	"easynote/internal/user"
)

type userResp struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt string `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

type tokenResp struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	User        userResp `json:"user"`
}

func (h *handler) newTokenResp(out user.AuthOutput) tokenResp {
	return tokenResp{
		AccessToken: out.Token,
		TokenType:   "bearer",
		User:        newUserResp(out.User),
	}
}

type messageResp struct {
	Message string `json:"message"`
}
