package user

import (
	"errors"
	"strconv"

	"squawker/backend/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// validationMessage returns a user-facing message for validator errors and
// "" for anything that shouldn't be shown verbatim
func validationMessage(err error) string {
	for _, v := range []error{
		validators.ErrEmailEmpty,
		validators.ErrEmailInvalid,
		validators.ErrPasswordEmpty,
		validators.ErrPasswordTooShort,
		validators.ErrPasswordTooLong,
		validators.ErrHandleEmpty,
		validators.ErrHandleTooLong,
		validators.ErrHandleInvalid,
	} {
		if errors.Is(err, v) {
			return err.Error()
		}
	}

	return ""
}

// pageParams reads the page and limit query params. Limit defaults to the
// configured feed page size and is capped at 100
func pageParams(c *gin.Context) (page, limit int, ok bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		return 0, 0, false
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(viper.GetInt("feed.page_size"))))
	if err != nil || limit <= 0 || limit > 100 {
		return 0, 0, false
	}

	return page, limit, true
}
