package api

import (
	"github.com/gin-gonic/gin"
)

type errorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorMessage{1000, "internal server error"}
	errorInvalidParameters  = errorMessage{1001, "invalid parameters"}
	errorFormNotFound       = errorMessage{1100, "form not found"}
	errorInvalidFields      = errorMessage{1101, "invalid form fields"}
	errorInvalidEmail       = errorMessage{1102, "invalid email address"}
	errorEmptyRecipientList = errorMessage{1103, "at least one email is required"}
	errorInvalidToken       = errorMessage{1104, "invalid token or email"}
	errorTokenAlreadyUsed   = errorMessage{1105, "this token has already been used"}
	errorInvalidAccessToken = errorMessage{1106, "invalid access token"}
)

func abortWithEncoding(c *gin.Context, code int, message errorMessage, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}

	c.AbortWithStatusJSON(code, gin.H{
		"error": message,
	})
}
