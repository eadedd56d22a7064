package response

import "github.com/gin-gonic/gin"

// JSON envelope shared by every endpoint:
// success -> {"status": "success", "data": ...}
// fail    -> {"status": "fail", "message": ...}   (client error)
// error   -> {"status": "error", "message": ...}  (server error)

func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{
		"status": "success",
		"data":   data,
	})
}

func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "fail",
		"message": message,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}
