package reset

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"
	"squawker/backend/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type confirmBody struct {
	Email    string `json:"email" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func ResetConfirm(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data confirmBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	user, err := service.UserByEmail(d.DB, data.Email)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			// Indistinguishable from a bad token
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Token expired or invalid",
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

	err = service.CompleteReset(d.DB, d.Hasher, user.ID, data.Token, data.Password, viper.GetDuration("reset.token_ttl"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenInvalid), errors.Is(err, service.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Token expired or invalid",
				"requestID": requestID,
			})
		case errors.Is(err, validators.ErrPasswordEmpty),
			errors.Is(err, validators.ErrPasswordTooShort),
			errors.Is(err, validators.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to complete reset", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password updated. You can log in now",
		"requestID": requestID,
	})
}
