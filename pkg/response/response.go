package response

import "github.com/gin-gonic/gin"

const (
	StatusSuccess = "success"
	StatusError   = "error"
	// StatusPartial marks a batch where some items failed
	StatusPartial = "partial"
)

// Response represents the standard envelope of the console and of the remote API
type Response struct {
	Status     string `json:"status"`      // "success", "partial" or "error"
	StatusCode int    `json:"status_code"` // HTTP status code
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data any) Response {
	return Response{
		Status:     StatusSuccess,
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     StatusError,
		StatusCode: statusCode,
		Error:      err,
	}
}

// Partial carries both the outcome data and the failure message
func Partial(statusCode int, data any, err string) Response {
	return Response{
		Status:     StatusPartial,
		StatusCode: statusCode,
		Data:       data,
		Error:      err,
	}
}

// OK writes a success envelope
func OK(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Success(statusCode, data))
}

// Fail aborts the request with an error envelope
func Fail(c *gin.Context, statusCode int, err string) {
	c.AbortWithStatusJSON(statusCode, Error(statusCode, err))
}
