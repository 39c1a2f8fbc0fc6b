package handler

import (
	"net/http"

	"AutoSync/config"
	"AutoSync/middleware"
	appctx "AutoSync/pkg/context"
	"AutoSync/pkg/response"
	"AutoSync/service"
	"AutoSync/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	UserService service.IUserService
	Config      *config.Config
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/auth")
	g.POST("/register", appctx.Wrap(h.Register))
	g.POST("/login", appctx.Wrap(h.Login))
	g.POST("/refresh", appctx.Wrap(h.Refresh))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g.POST("/logout", authorize, appctx.Wrap(h.Logout))
	g.GET("/user", authorize, appctx.Wrap(h.Me))
	g.PUT("/password", authorize, appctx.Wrap(h.UpdatePassword))
}

func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	result, err := h.UserService.Register(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Created(c, result)
	return nil
}

func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	result, err := h.UserService.Login(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, result)
	return nil
}

func (h *Auth) Refresh(c *gin.Context) error {
	var req types.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	tokens, err := h.UserService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		return fail(err)
	}
	response.Success(c, tokens)
	return nil
}

func (h *Auth) Logout(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	h.UserService.Logout(c.Request.Context(), userID, c.ClientIP())
	response.Success(c, nil)
	return nil
}

func (h *Auth) Me(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	user, err := h.UserService.Me(c.Request.Context(), userID)
	if err != nil {
		return fail(err)
	}
	response.Success(c, user)
	return nil
}

func (h *Auth) UpdatePassword(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.UserService.UpdatePassword(c.Request.Context(), userID, &req); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}
