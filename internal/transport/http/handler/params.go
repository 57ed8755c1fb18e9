package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"museum-api/internal/app"
)

type PageQuery struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0"`
}

func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, app.ErrInvalidInput
	}
	return uint(id), nil
}
