package handler

import (
	"errors"
	"net/http"
	"strconv"

	"AutoSync/pkg/response"
	"AutoSync/service"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the HTTP error envelope.
func fail(err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		return response.NewError(se.HTTPStatus(), se.Msg)
	}
	return response.NewError(http.StatusInternalServerError, err.Error())
}

func paramID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func queryLimit(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

type pagedData struct {
	Items any                 `json:"items"`
	Meta  response.Pagination `json:"meta"`
}

func paged(items any, page, perPage int, total int64) pagedData {
	return pagedData{
		Items: items,
		Meta:  response.NewPagination(page, perPage, total),
	}
}
