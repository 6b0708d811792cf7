package user

import (
	"errors"
	"net/http"

	"squawker/backend/internal"
	"squawker/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type updateBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate lets a user edit their own profile. The handle in the path
// must belong to the authenticated user
func UserUpdate(c *gin.Context, d *internal.Deps) {
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

	if target.ID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "You can only edit your own profile",
			"requestID": requestID,
		})
		return
	}

	var data updateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	user, err := service.UpdateProfile(d.DB, d.Hasher, userID, service.ProfileUpdate{
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     "This email is already registered",
				"requestID": requestID,
			})
			return
		}

		if msg := validationMessage(err); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     msg,
				"requestID": requestID,
			})
			return
		}

		internalError(c, requestID, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}
