package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DuJao22/Comercio-pro/core/auth"
)

// Actor returns the verified claims or writes a 401. The bool reports
// whether the handler may proceed.
func Actor(c echo.Context) (*auth.Claims, bool) {
	claims := auth.CurrentUser(c)
	if claims == nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "Não autenticado"})
		return nil, false
	}
	return claims, true
}

// Superadmin returns the claims only when the actor holds the global role,
// otherwise writes a 403.
func Superadmin(c echo.Context) (*auth.Claims, bool) {
	claims, ok := Actor(c)
	if !ok {
		return nil, false
	}
	if !claims.IsSuperadmin() {
		_ = c.JSON(http.StatusForbidden, echo.Map{"error": "Acesso negado"})
		return nil, false
	}
	return claims, true
}
