// File: handlers/respond.go
package handlers

import (
	"voyago/services/fault"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// serviceError maps a service failure to its HTTP status and the JSON error
// body. Every handler catches failures locally; nothing is retried and no
// request error is fatal to the process.
func serviceError(c *gin.Context, message string, err error) {
	utils.JSONError(c, fault.Status(err), message, err.Error())
}
