package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/apperror"
	"campus-backend/config"
)

// respondError translates a service error into the documented status and
// message. Unclassified errors become a generic 500; the real cause only
// goes to the log.
func respondError(c *gin.Context, err error) {
	status := apperror.Status(err)
	if status == http.StatusInternalServerError {
		config.Log.Error("Internal error handling ", c.FullPath(), ": ", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
