package user

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/model"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserFollowers returns one page of the users following :handle, most
// recent follower first
func UserFollowers(c *gin.Context, d *internal.Deps) {
	followPage(c, d, service.Followers)
}

// UserFollowing returns one page of the users :handle follows
func UserFollowing(c *gin.Context, d *internal.Deps) {
	followPage(c, d, service.Following)
}

func followPage(c *gin.Context, d *internal.Deps, fetch func(*gorm.DB, uint, int, int) ([]model.User, error)) {
	requestID := c.MustGet("requestID").(string)

	page, limit, ok := pageParams(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid page or limit provided",
			"requestID": requestID,
		})
		return
	}

	user, err := service.UserByHandle(d.DB, c.Param("handle"))
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

	users, err := fetch(d.DB, user.ID, page, limit)
	if err != nil {
		internalError(c, requestID, "Failed to fetch follow page", err)
		return
	}

	c.JSON(http.StatusOK, users)
}
