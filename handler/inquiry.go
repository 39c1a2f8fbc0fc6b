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

type Inquiry struct {
	InquiryService service.IInquiryService
	Config         *config.Config
}

func (h *Inquiry) RegisterRouter(r gin.IRouter) {
	g := r.Group("/inquiries")

	// anyone can file an inquiry
	g.POST("", appctx.Wrap(h.Create))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleSeller)
	managers := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	g.GET("", authorize, staff, appctx.Wrap(h.List))
	g.GET("/statistics/overview", authorize, managers, appctx.Wrap(h.Statistics))
	g.GET("/:id", authorize, staff, appctx.Wrap(h.Get))
	g.PUT("/:id", authorize, staff, appctx.Wrap(h.Update))
	g.PATCH("/:id/assign", authorize, managers, appctx.Wrap(h.Assign))
	g.POST("/:id/notes", authorize, staff, appctx.Wrap(h.AddNote))
	g.DELETE("/:id", authorize, managers, appctx.Wrap(h.Delete))
}

func (h *Inquiry) Create(c *gin.Context) error {
	var req types.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	inquiry, err := h.InquiryService.Create(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Created(c, inquiry)
	return nil
}

func (h *Inquiry) List(c *gin.Context) error {
	var filter types.InquiryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	inquiries, total, err := h.InquiryService.List(c.Request.Context(), &filter)
	if err != nil {
		return fail(err)
	}
	response.Success(c, paged(inquiries, filter.Page, filter.PerPage, total))
	return nil
}

func (h *Inquiry) Get(c *gin.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	inquiry, err := h.InquiryService.Get(c.Request.Context(), id)
	if err != nil {
		return fail(err)
	}
	response.Success(c, inquiry)
	return nil
}

func (h *Inquiry) Update(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	inquiry, err := h.InquiryService.Update(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, inquiry)
	return nil
}

func (h *Inquiry) Assign(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.AssignInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	inquiry, err := h.InquiryService.Assign(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, inquiry)
	return nil
}

func (h *Inquiry) AddNote(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.AddInquiryNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	inquiry, err := h.InquiryService.AddNote(c.Request.Context(), actor, id, &req, c.ClientIP())
	if err != nil {
		return fail(err)
	}
	response.Success(c, inquiry)
	return nil
}

func (h *Inquiry) Delete(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.InquiryService.Delete(c.Request.Context(), actor, id, c.ClientIP()); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Inquiry) Statistics(c *gin.Context) error {
	stats, err := h.InquiryService.Statistics(c.Request.Context())
	if err != nil {
		return fail(err)
	}
	response.Success(c, stats)
	return nil
}
