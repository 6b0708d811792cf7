package user

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFetch returns the public profile behind a handle together with its
// squawk and relationship counts
func UserFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	handle := c.Param("handle")

	user, err := service.UserByHandle(d.DB, handle)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	squawks, err := service.SquawkCount(d.DB, user.ID)
	if err != nil {
		internalError(c, requestID, "Failed to count squawks", err)
		return
	}

	followers, err := service.FollowerCount(d.DB, user.ID)
	if err != nil {
		internalError(c, requestID, "Failed to count followers", err)
		return
	}

	following, err := service.FollowingCount(d.DB, user.ID)
	if err != nil {
		internalError(c, requestID, "Failed to count following", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":            user,
		"squawk_count":    squawks,
		"follower_count":  followers,
		"following_count": following,
	})
}

func internalError(c *gin.Context, requestID, logMsg string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":     "Internal server error",
		"requestID": requestID,
	})

	zap.L().Error(logMsg, zap.Error(err), zap.String("requestID", requestID))
}
