// Package relationship exposes the follow graph over HTTP. All routes
// resolve the target by handle and act on behalf of the authenticated user
package relationship

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Follow(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	target, err := service.UserByHandle(d.DB, c.Param("handle"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		internalError(c, requestID, "Failed to fetch user", err)
		return
	}

	err = service.Follow(d.DB, userID, target.ID)
	if err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":     "You can't follow yourself",
				"requestID": requestID,
			})
			return
		}

		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		internalError(c, requestID, "Failed to create follow edge", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"following": true,
	})
}

func internalError(c *gin.Context, requestID, logMsg string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "Internal server error",
		"requestID": requestID,
	})

	zap.L().Error(logMsg, zap.Error(err), zap.String("requestID", requestID))
}
