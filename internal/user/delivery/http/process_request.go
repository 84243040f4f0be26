package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"easynote/internal/user"
)

const minPasswordLength = 6

var (
	errInvalidEmail    = errors.New("a valid email is required")
	errPasswordTooWeak = errors.New("password must be at least 6 characters")
)

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

func (r registerReq) validate() error {
	if !strings.Contains(r.Email, "@") {
		return errInvalidEmail
	}
	if len(r.Password) < minPasswordLength {
		return errPasswordTooWeak
	}
	return nil
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
		Nickname: r.Nickname,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) validate() error {
	if r.Email == "" || r.Password == "" {
		return errInvalidEmail
	}
	return nil
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: r.Password,
	}
}

type updateMeReq struct {
	Nickname  *string `json:"nickname"`
	AvatarURL *string `json:"avatarUrl"`
}

func (r updateMeReq) toInput() user.UpdateMeInput {
	return user.UpdateMeInput{Nickname: r.Nickname, AvatarURL: r.AvatarURL}
}

type changePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r changePasswordReq) validate() error {
	if len(r.NewPassword) < minPasswordLength {
		return errPasswordTooWeak
	}
	return nil
}

func (r changePasswordReq) toInput() user.ChangePasswordInput {
	return user.ChangePasswordInput{OldPassword: r.OldPassword, NewPassword: r.NewPassword}
}

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUpdateMeReq(c *gin.Context) (updateMeReq, error) {
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processChangePasswordReq(c *gin.Context) (changePasswordReq, error) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
