// Package reset implements the password reset flow. Both endpoints answer
// the same way for known and unknown accounts so neither can be used to
// probe which emails are registered
package reset

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type requestBody struct {
	Email string `json:"email" binding:"required"`
}

const genericConfirmation = "If that email is registered, a reset link is on its way"

func ResetRequest(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data requestBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	token, user, err := service.IssueReset(d.DB, d.Hasher, data.Email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// Same confirmation as the success path
			c.JSON(http.StatusOK, gin.H{
				"message":   genericConfirmation,
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue reset token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Delivery is best-effort and never blocks the response
	go func() {
		if err := service.SendResetMail(user, token); err != nil {
			zap.L().Error("Failed to send reset mail", zap.Error(err), zap.Uint("userID", user.ID))
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"message":   genericConfirmation,
		"requestID": requestID,
	})
}
