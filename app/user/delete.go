package user

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserDelete removes an account by handle. Admin only, the account's
// squawks and follow edges in both directions go with it
func UserDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	isAdmin := c.MustGet("isAdmin").(bool)

	if !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Only administrators can delete accounts",
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

	if err := service.DestroyUser(d.DB, user.ID); err != nil {
		internalError(c, requestID, "Failed to delete user", err)
		return
	}

	zap.L().Info("Account deleted",
		zap.String("handle", user.Handle),
		zap.String("requestID", requestID))

	c.JSON(http.StatusOK, gin.H{
		"message":   "Account for " + user.Name + " deleted",
		"requestID": requestID,
	})
}
