package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/sajeeb10/pixelgram/internal/models"
)

// currentUserClaims returns the JWT claims stored by the auth middleware,
// or nil when the request is unauthenticated.
func currentUserClaims(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// getUserIDFromContext returns the authenticated user's id, or 0 if absent
func getUserIDFromContext(c echo.Context) uint {
	claims := currentUserClaims(c)
	if claims == nil {
		return 0
	}
	return claims.UserID
}
