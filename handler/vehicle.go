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

type Vehicle struct {
	VehicleService service.IVehicleService
	Config         *config.Config
}

func (h *Vehicle) RegisterRouter(r gin.IRouter) {
	g := r.Group("/vehicles")
	g.GET("", appctx.Wrap(h.List))
	g.GET("/featured/list", appctx.Wrap(h.Featured))
	g.GET("/most-viewed", appctx.Wrap(h.MostViewed))
	g.GET("/brand/:brand", appctx.Wrap(h.ByBrand))
	g.GET("/price-range", appctx.Wrap(h.PriceRange))
	g.GET("/statistics/overview", appctx.Wrap(h.Statistics))
	g.GET("/:id", appctx.Wrap(h.Get))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	g.POST("", authorize, staff, appctx.Wrap(h.Create))
	g.PUT("/:id", authorize, staff, appctx.Wrap(h.Update))
	g.DELETE("/:id", authorize, staff, appctx.Wrap(h.Delete))
	g.PATCH("/:id/status", authorize, staff, appctx.Wrap(h.UpdateStatus))
	g.PATCH("/:id/featured", authorize, staff, appctx.Wrap(h.ToggleFeatured))
}

func (h *Vehicle) List(c *gin.Context) error {
	var filter types.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	vehicles, total, err := h.VehicleService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(vehicles, filter.Page, filter.PerPage, total))
	return nil
}

func (h *Vehicle) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	vehicle, err := h.VehicleService.Get(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	response.Success(c, vehicle)
	return nil
}

func (h *Vehicle) Create(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	var req types.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	vehicle, err := h.VehicleService.Create(c.Request.Context(), actor, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Created(c, vehicle)
	return nil
}

func (h *Vehicle) Update(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	vehicle, err := h.VehicleService.Update(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, vehicle)
	return nil
}

func (h *Vehicle) Delete(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.VehicleService.Delete(c.Request.Context(), actor, id, c.ClientIP()); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Vehicle) UpdateStatus(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateVehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	vehicle, err := h.VehicleService.UpdateStatus(c.Request.Context(), actor, id, req.Status, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, vehicle)
	return nil
}

func (h *Vehicle) ToggleFeatured(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	vehicle, err := h.VehicleService.ToggleFeatured(c.Request.Context(), actor, id, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, vehicle)
	return nil
}

func (h *Vehicle) Featured(c *gin.Context) error {
	vehicles, err := h.VehicleService.Featured(c.Request.Context(), queryLimit(c, 10))
	if err != nil {
		return fail(err)
	}
	response.Success(c, vehicles)
	return nil
}

func (h *Vehicle) MostViewed(c *gin.Context) error {
	vehicles, err := h.VehicleService.MostViewed(c.Request.Context(), queryLimit(c, 10))
	if err != nil {
		return fail(err)
	}
	response.Success(c, vehicles)
	return nil
}

func (h *Vehicle) ByBrand(c *gin.Context) error {
	var filter types.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	filter.Brand = c.Param("brand")
	vehicles, total, err := h.VehicleService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(vehicles, filter.Page, filter.PerPage, total))
	return nil
}

func (h *Vehicle) PriceRange(c *gin.Context) error {
	var filter types.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	if filter.MinPrice == nil || filter.MaxPrice == nil {
		return response.NewError(http.StatusBadRequest, "min_price and max_price are required")
	}
	vehicles, total, err := h.VehicleService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(vehicles, filter.Page, filter.PerPage, total))
	return nil
}

func (h *Vehicle) Statistics(c *gin.Context) error {
	stats, err := h.VehicleService.Statistics(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, stats)
	return nil
}
