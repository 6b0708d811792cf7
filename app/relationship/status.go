package relationship

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Status reports whether the authenticated user follows :handle
func Status(c *gin.Context, d *internal.Deps) {
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

	following, err := service.IsFollowing(d.DB, userID, target.ID)
	if err != nil {
		internalError(c, requestID, "Failed to check follow edge", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"following": following,
	})
}
