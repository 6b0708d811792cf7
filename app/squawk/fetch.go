package squawk

import (
	"errors"
	"net/http"
	"strconv"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func SquawkFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "ID must be a number",
			"requestID": requestID,
		})
		return
	}

	squawk, err := service.SquawkByID(d.DB, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Squawk not found",
				"requestID": requestID,
			})
			return
		}

		internalError(c, requestID, "Failed to fetch squawk", err)
		return
	}

	c.JSON(http.StatusOK, squawk)
}
