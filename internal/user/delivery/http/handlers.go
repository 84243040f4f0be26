package http

import (
	"github.com/gin-gonic/gin"

	"easynote/internal/middleware"
	"easynote/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates a new account and returns a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration data"
// @Success     201 {object} tokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTokenResp(out))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} tokenResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(out))
}

// Logout godoc
// @Summary     Log out
// @Description Tokens are stateless; the client drops its copy.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} messageResp
// @Router      /api/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	response.OK(c, messageResp{Message: "登出成功"})
}

// Me godoc
// @Summary     Current user
// @Description Returns the authenticated user's account.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// UpdateMe godoc
// @Summary     Update profile
// @Description Applies partial changes to the authenticated user's profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body updateMeReq true "Profile changes"
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/auth/me [PUT]
func (h *handler) UpdateMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateMeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	u, err := h.uc.UpdateMe(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateMe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(u))
}

// ChangePassword godoc
// @Summary     Change password
// @Description Verifies the old password before storing the new one.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body changePasswordReq true "Old and new passwords"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/auth/password [PUT]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processChangePasswordReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ChangePassword(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.ChangePassword: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{Message: "密码修改成功"})
}
