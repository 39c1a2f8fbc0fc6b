package handler

import (
	"net/http"

	"AutoSync/config"
	"AutoSync/middleware"
	appctx "AutoSync/pkg/context"
	"AutoSync/pkg/response"
	"AutoSync/service"

	"github.com/gin-gonic/gin"
)

type Favorite struct {
	FavoriteService service.IFavoriteService
	Config          *config.Config
}

func (h *Favorite) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/favorites", authorize)
	g.GET("", appctx.Wrap(h.List))
	g.POST("/:vehicleId", appctx.Wrap(h.Add))
	g.DELETE("/:vehicleId", appctx.Wrap(h.Remove))
	g.POST("/:vehicleId/toggle", appctx.Wrap(h.Toggle))
	g.GET("/:vehicleId/check", appctx.Wrap(h.Check))
}

func (h *Favorite) List(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	favorites, err := h.FavoriteService.List(c.Request.Context(), userID)
	if err != nil {
		return fail(err)
	}
	response.Success(c, favorites)
	return nil
}

func (h *Favorite) Add(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "vehicleId")
	if err != nil {
		return err
	}
	fav, err := h.FavoriteService.Add(c.Request.Context(), userID, vehicleID)
	if err != nil {
		return fail(err)
	}
	response.Created(c, fav)
	return nil
}

func (h *Favorite) Remove(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "vehicleId")
	if err != nil {
		return err
	}
	if err := h.FavoriteService.Remove(c.Request.Context(), userID, vehicleID); err != nil {
		return fail(err)
	}
	response.Success(c, nil)
	return nil
}

func (h *Favorite) Toggle(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "vehicleId")
	if err != nil {
		return err
	}
	favorited, err := h.FavoriteService.Toggle(c.Request.Context(), userID, vehicleID)
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"favorited": favorited})
	return nil
}

func (h *Favorite) Check(c *gin.Context) error {
	userID, err := appctx.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	vehicleID, err := paramID(c, "vehicleId")
	if err != nil {
		return err
	}
	favorited, err := h.FavoriteService.Check(c.Request.Context(), userID, vehicleID)
	if err != nil {
		return fail(err)
	}
	response.Success(c, gin.H{"favorited": favorited})
	return nil
}
