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

type Audit struct {
	AuditService service.IAuditService
	Config       *config.Config
}

func (h *Audit) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	admin := middleware.RequireRole(models.RoleAdmin)

	g := r.Group("/audit-logs", authorize, admin)
	g.GET("", appctx.Wrap(h.List))
	g.GET("/statistics/activity", appctx.Wrap(h.ActivityStatistics))
	g.GET("/:id", appctx.Wrap(h.Get))
}

func (h *Audit) List(c *gin.Context) error {
	var filter types.AuditLogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	logs, total, err := h.AuditService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(logs, filter.Page, filter.PerPage, total))
	return nil
}

func (h *Audit) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	entry, err := h.AuditService.Get(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	response.Success(c, entry)
	return nil
}

func (h *Audit) ActivityStatistics(c *gin.Context) error {
	stats, err := h.AuditService.ActivityStatistics(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, stats)
	return nil
}
