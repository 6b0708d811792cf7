package squawk

import (
	"errors"
	"net/http"
	"strconv"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SquawkDelete removes a squawk. Allowed for the author and for admins
func SquawkDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "ID must be a number",
			"requestID": requestID,
		})
		return
	}

	err = service.DeleteSquawk(d.DB, uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Squawk not found",
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error":     "You can only delete your own squawks",
				"requestID": requestID,
			})
		default:
			internalError(c, requestID, "Failed to delete squawk", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Squawk deleted",
		"requestID": requestID,
	})
}
