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

type View struct {
	ViewService service.IVehicleViewService
	Config      *config.Config
}

func (h *View) RegisterRouter(r gin.IRouter) {
	g := r.Group("/vehicle-views")

	// public: browsers report views without logging in
	g.POST("", appctx.Wrap(h.Record))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	g.GET("/vehicle/:id", authorize, staff, appctx.Wrap(h.ListByVehicle))
	g.GET("/statistics/overview", authorize, staff, appctx.Wrap(h.Statistics))
}

func (h *View) Record(c *gin.Context) error {
	var req types.RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	// fill gaps from the request itself
	if req.IPAddress == "" {
		req.IPAddress = c.ClientIP()
	}
	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}
	if req.Referer == "" {
		req.Referer = c.Request.Referer()
	}
	if userID, err := appctx.GetUserID(c); err == nil && req.UserID == nil {
		req.UserID = &userID
	}

	recorded, err := h.ViewService.Record(c.Request.Context(), &req)
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"recorded": recorded})
	return nil
}

func (h *View) ListByVehicle(c *gin.Context) error {
	vehicleID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var page types.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	views, total, err := h.ViewService.ListByVehicle(c.Request.Context(), vehicleID, &page)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(views, page.Page, page.PerPage, total))
	return nil
}

func (h *View) Statistics(c *gin.Context) error {
	stats, err := h.ViewService.Statistics(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, stats)
	return nil
}
