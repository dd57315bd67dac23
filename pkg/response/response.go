package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/jacksonrr3/tutor-booking/pkg/errors"
)

// ErrorTemplate is the page rendered for every non-form error.
const ErrorTemplate = "error.html"

// Page is the data contract shared by every HTML template.
type Page struct {
	Title string
	Data  interface{}
	// Errors holds per-field validation messages for form pages.
	Errors map[string]string
}

// HTML renders a named template wrapped in a Page.
func HTML(c *gin.Context, status int, template, title string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.HTML(status, template, Page{Title: title, Data: data})
}

// Form re-renders a form template with validation messages.
func Form(c *gin.Context, template, title string, data interface{}, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.HTML(appErr.Status, template, Page{Title: title, Data: data, Errors: appErr.Fields})
}

// Error renders the error page converting the error to the common structure.
// Internal failures are attached to the context so the access log records them.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.Header("Cache-Control", "no-store")
	c.HTML(appErr.Status, ErrorTemplate, Page{Title: http.StatusText(appErr.Status), Data: appErr})
}

// NotFound is the engine-level handler for unknown routes.
func NotFound(c *gin.Context) {
	Error(c, appErrors.ErrNotFound)
}

// Recovery renders the error page for panics and logs them.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		l.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		Error(c, appErrors.ErrInternal)
		c.Abort()
	})
}
