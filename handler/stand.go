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

type Stand struct {
	StandService service.IStandService
	Config       *config.Config
}

func (h *Stand) RegisterRouter(r gin.IRouter) {
	g := r.Group("/stands")
	g.GET("", appctx.Wrap(h.List))
	g.GET("/:id", appctx.Wrap(h.Get))
	g.GET("/slug/:slug", appctx.Wrap(h.GetBySlug))
	g.GET("/city/:city", appctx.Wrap(h.ByCity))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager)
	admin := middleware.RequireRole(models.RoleAdmin)

	g.POST("", authorize, admin, appctx.Wrap(h.Create))
	g.PUT("/:id", authorize, staff, appctx.Wrap(h.Update))
	g.DELETE("/:id", authorize, admin, appctx.Wrap(h.Delete))
	g.PATCH("/:id/business-hours", authorize, staff, appctx.Wrap(h.UpdateBusinessHours))
	g.GET("/:id/statistics", authorize, staff, appctx.Wrap(h.Statistics))
}

func (h *Stand) List(c *gin.Context) error {
	var filter types.StandFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	stands, total, err := h.StandService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(stands, filter.Page, filter.PerPage, total))
	return nil
}

func (h *Stand) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	stand, err := h.StandService.Get(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	response.Success(c, stand)
	return nil
}

func (h *Stand) GetBySlug(c *gin.Context) error {
	stand, err := h.StandService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return fail(err)
	}
	response.Success(c, stand)
	return nil
}

func (h *Stand) ByCity(c *gin.Context) error {
	stands, err := h.StandService.ByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		return fail(err)
	}
	response.Success(c, stands)
	return nil
}

func (h *Stand) Create(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.CreateStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	stand, err := h.StandService.Create(c.Request.Context(), actor, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Created(c, stand)
	return nil
}

func (h *Stand) Update(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateStandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	stand, err := h.StandService.Update(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, stand)
	return nil
}

func (h *Stand) Delete(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.StandService.Delete(c.Request.Context(), actor, id, c.ClientIP()); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Stand) UpdateBusinessHours(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateBusinessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	stand, err := h.StandService.UpdateBusinessHours(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, stand)
	return nil
}

func (h *Stand) Statistics(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	stats, err := h.StandService.Statistics(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	response.Success(c, stats)
	return nil
}
