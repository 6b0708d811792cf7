package squawk

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBody struct {
	Content string `json:"content" binding:"required"`
}

func SquawkCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	var data createBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	squawk, err := service.CreateSquawk(d.DB, userID, data.Content)
	if err != nil {
		if errors.Is(err, service.ErrContentEmpty) || errors.Is(err, service.ErrContentTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}

		internalError(c, requestID, "Failed to create squawk", err)
		return
	}

	c.JSON(http.StatusOK, squawk)
}

func internalError(c *gin.Context, requestID, logMsg string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "Internal server error",
		"requestID": requestID,
	})

	zap.L().Error(logMsg, zap.Error(err), zap.String("requestID", requestID))
}
