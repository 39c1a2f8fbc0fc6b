package handler

import (
	"net/http"

	"AutoSync/config"
	"AutoSync/middleware"
	"AutoSync/models"
	appctx "AutoSync/pkg/context"
	"AutoSync/pkg/response"
	"AutoSync/service"
	"AutoSync/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
	Config      *config.Config
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleAdmin)

	g := r.Group("/users", authorize, admin)
	g.GET("", appctx.Wrap(h.List))
	g.GET("/:id", appctx.Wrap(h.Get))
	g.POST("", appctx.Wrap(h.Create))
	g.PUT("/:id", appctx.Wrap(h.Update))
	g.DELETE("/:id", appctx.Wrap(h.Delete))
	g.PATCH("/:id/active", appctx.Wrap(h.ToggleActive))
}

func (h *User) List(c *gin.Context) error {
	var filter types.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	users, total, err := h.UserService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(users, filter.Page, filter.PerPage, total))
	return nil
}

func (h *User) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.UserService.Get(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	response.Success(c, user)
	return nil
}

func (h *User) Create(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.UserService.Create(c.Request.Context(), actor, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Created(c, user)
	return nil
}

func (h *User) Update(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.UserService.Update(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, user)
	return nil
}

func (h *User) Delete(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if actor == id {
		return response.NewError(http.StatusUnprocessableEntity, "cannot delete your own account")
	}
	if err := h.UserService.Delete(c.Request.Context(), actor, id, c.ClientIP()); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *User) ToggleActive(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.UserService.ToggleActive(c.Request.Context(), actor, id, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, user)
	return nil
}
