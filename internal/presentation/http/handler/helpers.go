package handler

import (
	"github.com/caiolopes/pdv-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// GetRegisterSession extracts the register session from the Gin context
func GetRegisterSession(c *gin.Context) string {
	return middleware.GetRegisterSession(c)
}
