// Package response defines the JSON envelope every handler returns:
// {"success": true, "data": ...} on the happy path, or
// {"success": false, "error": {...}} with a stable machine-readable
// code the frontend can switch on.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a code plus a human message. Codes are contract,
// messages are free to change.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, errorEnvelope(code, message, nil))
}

// ErrorWithDetails adds a per-field breakdown, used for validation
// failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, errorEnvelope(code, message, details))
}

func errorEnvelope(code, message string, details any) gin.H {
	e := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		e["details"] = details
	}
	return gin.H{
		"success": false,
		"error":   e,
	}
}
