package httperr

import (
	"net/http"

	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
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

// Abort maps a usecase error to its status and the student-facing message.
func Abort(c *gin.Context, err error) {
	AbortWithError(c, StatusOf(err), err, shared.UserMessage(err), nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrAuth):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrCancellationClosed):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrInvalidClassSlot):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
