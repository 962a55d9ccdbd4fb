package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/alhuda-academy/admissions-api/internal/middleware"
	"github.com/alhuda-academy/admissions-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// actorID is the authenticated user's id, or "" on public routes. Used for
// attribution fields like export requested_by and calendar created_by.
func actorID(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil {
		return claims.UserID
	}
	return ""
}
