package handler

import (
	"fmt"
	"io"
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

type VehicleImage struct {
	ImageService service.IVehicleImageService
	AuditService service.IAuditService
	Config       *config.Config
}

func (h *VehicleImage) RegisterRouter(r gin.IRouter) {
	g := r.Group("/vehicles/:id/images")
	g.GET("", appctx.Wrap(h.List))

	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	g.POST("", authorize, staff, appctx.Wrap(h.Upload))
	g.DELETE("/:imageId", authorize, staff, appctx.Wrap(h.Delete))
	g.PUT("/:imageId/primary", authorize, staff, appctx.Wrap(h.SetPrimary))
	g.PUT("/reorder", authorize, staff, appctx.Wrap(h.Reorder))
}

func (h *VehicleImage) List(c *gin.Context) error {
	vehicleID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	images, err := h.ImageService.List(c.Request.Context(), vehicleID)
	if err != nil {
		return fail(err)
	}
	response.Success(c, images)
	return nil
}

// Upload accepts multipart form data: repeated "images" file parts plus
// optional "alt_text_<n>" fields matched to parts by position.
func (h *VehicleImage) Upload(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	files := form.File["images"]
	if len(files) == 0 {
		return response.NewError(http.StatusBadRequest, "no images attached")
	}
	if len(files) > types.MaxImagesPerBatch {
		return response.NewError(http.StatusUnprocessableEntity,
			fmt.Sprintf("at most %d images per upload", types.MaxImagesPerBatch))
	}

	uploads := make([]service.ImageUpload, 0, len(files))
	for i, header := range files {
		if header.Size > types.MaxImageSize {
			return response.NewError(http.StatusUnprocessableEntity,
				fmt.Sprintf("file %d exceeds %d bytes", i, types.MaxImageSize))
		}
		file, err := header.Open()
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return response.NewError(http.StatusInternalServerError, err.Error())
		}
		uploads = append(uploads, service.ImageUpload{
			Data:    data,
			AltText: c.PostForm(fmt.Sprintf("alt_text_%d", i)),
		})
	}

	images, err := h.ImageService.UploadBatch(c.Request.Context(), vehicleID, uploads)
	if err != nil {
		return fail(err)
	}

	h.AuditService.Record(c.Request.Context(), &actor, models.AuditActionUpload,
		models.VehicleImage{}.TableName(), vehicleID,
		map[string]any{"count": len(images)}, c.ClientIP())
	response.Created(c, images)
	return nil
}

func (h *VehicleImage) Delete(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := paramID(c, "imageId")
	if err != nil {
		return err
	}
	if err := h.ImageService.Delete(c.Request.Context(), vehicleID, imageID); err != nil {
		return fail(err)
	}
	h.AuditService.Record(c.Request.Context(), &actor, models.AuditActionDelete,
		models.VehicleImage{}.TableName(), imageID, nil, c.ClientIP())
	response.Success(c, nil)
	return nil
}

func (h *VehicleImage) SetPrimary(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := paramID(c, "imageId")
	if err != nil {
		return err
	}
	if err := h.ImageService.SetPrimary(c.Request.Context(), vehicleID, imageID); err != nil {
		return fail(err)
	}
	h.AuditService.Record(c.Request.Context(), &actor, models.AuditActionUpdate,
		models.VehicleImage{}.TableName(), imageID,
		map[string]any{"is_primary": true}, c.ClientIP())
	response.Success(c, nil)
	return nil
}

func (h *VehicleImage) Reorder(c *gin.Context) error {
	actor, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req types.ReorderImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.ImageService.Reorder(c.Request.Context(), vehicleID, req.ImageIDs); err != nil {
		return fail(err)
	}
	h.AuditService.Record(c.Request.Context(), &actor, models.AuditActionUpdate,
		models.VehicleImage{}.TableName(), vehicleID,
		map[string]any{"image_ids": req.ImageIDs}, c.ClientIP())
	response.Success(c, nil)
	return nil
}
