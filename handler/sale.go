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

type Sale struct {
	SaleService service.ISaleService
	Config      *config.Config
}

func (h *Sale) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleSeller)
	managers := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	g := r.Group("/sales", authorize)
	g.GET("", staff, appctx.Wrap(h.List))
	g.GET("/statistics/overview", managers, appctx.Wrap(h.Statistics))
	g.GET("/statistics/top-sellers", managers, appctx.Wrap(h.TopSellers))
	g.GET("/:id", staff, appctx.Wrap(h.Get))
	g.POST("", staff, appctx.Wrap(h.Create))
	g.PUT("/:id", managers, appctx.Wrap(h.Update))
	g.DELETE("/:id", managers, appctx.Wrap(h.Cancel))
}

func (h *Sale) List(c *gin.Context) error {
	var filter types.SaleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	sales, total, err := h.SaleService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(sales, filter.Page, filter.PerPage, total))
	return nil
}

func (h *Sale) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	sale, err := h.SaleService.Get(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	response.Success(c, sale)
	return nil
}

func (h *Sale) Create(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	sale, err := h.SaleService.Create(c.Request.Context(), actor, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Created(c, sale)
	return nil
}

func (h *Sale) Update(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	sale, err := h.SaleService.Update(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, sale)
	return nil
}

func (h *Sale) Cancel(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.SaleService.Cancel(c.Request.Context(), actor, id, c.ClientIP()); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Sale) Statistics(c *gin.Context) error {
	stats, err := h.SaleService.Statistics(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, stats)
	return nil
}

func (h *Sale) TopSellers(c *gin.Context) error {
	sellers, err := h.SaleService.TopSellers(c.Request.Context(), queryLimit(c, 10))
	if err != nil {
		return fail(err)
	}
	response.Success(c, sellers)
	return nil
}
