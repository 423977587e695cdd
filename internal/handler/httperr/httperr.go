package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error payload every endpoint returns. Field is set only
// for validation failures that can name the offending input.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Field   string `json:"field,omitempty"`
}

// AbortWithError writes the error payload and keeps the original error on
// the context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	abort(c, err, Response{Status: status, Message: msg})
}

// AbortWithField is AbortWithError with the offending field named in the
// payload.
func AbortWithField(c *gin.Context, status int, err error, msg, field string) {
	abort(c, err, Response{Status: status, Message: msg, Field: field})
}

func abort(c *gin.Context, err error, resp Response) {
	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}
