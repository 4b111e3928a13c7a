package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// data payload of the uniform response envelope
type Response map[string]interface{}

// business error codes
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeDuplicate    = 40901
	CodeDeleted      = 40902
	CodeOrphan       = 40903
	CodeServerErr    = 50001
	CodeAuditFail    = 50002
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the uniform error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
