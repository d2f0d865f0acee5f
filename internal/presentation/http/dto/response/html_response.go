package response

import (
	"github.com/branchdesk/customer-intake/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// Page templates
const (
	FormPage  = "form.html"
	ViewPage  = "view.html"
	ErrorPage = "error.html"
)

// Page renders one of the HTML templates with a 200 status
func Page(c *gin.Context, name string, data gin.H) {
	c.HTML(200, name, data)
}

// Error renders the generic error page with the status carried by err.
// The underlying cause is attached to the request for logging only.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.HTML(appErr.Code, ErrorPage, gin.H{
		"Title":   "Error",
		"Status":  appErr.Code,
		"Message": appErr.Message,
	})
}

// NotFound renders the error page with a 404 status
func NotFound(c *gin.Context) {
	Error(c, apperror.ErrNotFound)
}

// Redirect sends a 302 Found to location
func Redirect(c *gin.Context, location string) {
	c.Redirect(302, location)
}

// Attachment sends body as a file download
func Attachment(c *gin.Context, contentType, disposition string, body []byte) {
	c.Header("Content-Disposition", disposition)
	c.Data(200, contentType, body)
}
