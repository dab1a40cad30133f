package httperr

import (
	"net/http"

	"kost-booking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context so the logging middleware can report it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindError answers 400 for a failed ShouldBind*. Field-level failures are listed in
// detail; malformed bodies get the message only.
func AbortWithBindError(c *gin.Context, err error) {
	var detail any
	if fields := validator.FromError(err); len(fields) > 0 {
		detail = fields
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
}
