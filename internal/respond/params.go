package respond

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projectdesk/projectdesk-backend/internal/apperr"
)

const (
	defaultPage = 0
	defaultSize = 5
)

// PageQuery reads the page/size parameters shared by every list endpoint,
// applying the defaults and bounds: page is zero-based and must be >= 0,
// size must be >= 1.
func PageQuery(c *gin.Context) (page, size int, err error) {
	page, err = intQuery(c, "page", defaultPage)
	if err != nil {
		return 0, 0, apperr.BadRequest("page value must be a valid number")
	}
	size, err = intQuery(c, "size", defaultSize)
	if err != nil {
		return 0, 0, apperr.BadRequest("size value must be a valid number")
	}

	if page < 0 {
		return 0, 0, apperr.BadRequest("page value must be equal or greater than 0")
	}
	if size < 1 {
		return 0, 0, apperr.BadRequest("size value must be equal or greater than 1")
	}
	return page, size, nil
}

// ValueQuery reads the non-blank `value` search parameter. The field name is
// only used in the violation message.
func ValueQuery(c *gin.Context, field string) (string, error) {
	v := c.Query("value")
	if strings.TrimSpace(v) == "" {
		return "", apperr.BadRequest("%s must not be left blank", field)
	}
	return v, nil
}

// IDParam reads the numeric `id` path parameter.
func IDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("id must be a valid number")
	}
	return id, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
