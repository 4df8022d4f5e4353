package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edumart/edumart-api/internal/dto/response"
	apperrors "github.com/edumart/edumart-api/pkg/errors"
)

const msgValidationFailed = "validation failed"

// respondError maps a service error onto the API envelope
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(apperrors.GetStatus(err), response.NewError[any](apperrors.GetMessage(err)))
}

// pageParams reads page/size query parameters with sane bounds
func pageParams(ctx *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(ctx.DefaultQuery("size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return page, size
}
