package handlers

import (
	"net/http"

	"tourism/internal/auth"
	intconfig "tourism/internal/config"
	"tourism/internal/http/middleware"
	"tourism/internal/notify"

	"github.com/gin-gonic/gin"
)

// Deps carries process-wide collaborators the handlers need. Set once at
// router construction.
type Deps struct {
	Env      intconfig.Env
	OTPStore auth.OTPStore
	Sender   notify.Sender
}

var deps Deps

func Init(d Deps) {
	deps = d
}

func dispatcher(c *gin.Context) notify.Dispatcher {
	return notify.Dispatcher{
		Sender:        deps.Sender,
		OperatorEmail: deps.Env.OperatorEmail,
		RequestID:     middleware.GetRequestID(c),
	}
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
