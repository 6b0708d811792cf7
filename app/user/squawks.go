package user

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserSquawks returns one page of a user's own squawks, newest first
func UserSquawks(c *gin.Context, d *internal.Deps) {
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

	squawks, err := service.UserSquawks(d.DB, user.ID, page, limit)
	if err != nil {
		internalError(c, requestID, "Failed to fetch user squawks", err)
		return
	}

	c.JSON(http.StatusOK, squawks)
}
