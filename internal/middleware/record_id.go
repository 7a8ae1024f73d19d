package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	apierrors "github.com/yukikurage/dashboard-demo-api/internal/errors"
)

// RequireRecordID parses the numeric :id parameter and stores it in the context
func RequireRecordID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid ID")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyRecordID, id)
		c.Next()
	}
}

// GetRecordID retrieves the ID parsed by RequireRecordID
func GetRecordID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(constants.ContextKeyRecordID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
