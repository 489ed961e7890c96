package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "task-prioritizer/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// JSON sends 200 JSON with the body as-is, without the envelope.
func JSON(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// BadRequest sends 400 with a message and optional field-level details.
func BadRequest(c *gin.Context, message string, details map[string]any) {
	c.JSON(http.StatusBadRequest, ErrorResp{
		Error:   message,
		Details: details,
	})
}

// Error sends an error response. *errors.HTTPError values keep their status
// and details; anything else is reported as 400.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, ErrorResp{
			Error:   httpErr.Message,
			Details: httpErr.Details,
		})
		return
	}

	BadRequest(c, err.Error(), nil)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{
		Error: "Rate limit exceeded, retry later.",
	})
}
