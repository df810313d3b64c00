package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	coreAuth "github.com/DuJao22/Comercio-pro/core/auth"
	userRepo "github.com/DuJao22/Comercio-pro/model/repository/user"
)

func init() {
	api.RegisterModule(RegisterAuthRoutes)
}

// RegisterAuthRoutes mounts POST /api/login (skipped by the JWT middleware).
func RegisterAuthRoutes(g *echo.Group, db *gorm.DB) {
	users := userRepo.GetUserRepository(db)

	g.POST("/login", func(c echo.Context) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		u, err := users.FindByEmail(body.Email)
		if err != nil || !coreAuth.CheckPassword(u.Password, body.Password) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Credenciais inválidas"})
		}

		token, err := coreAuth.IssueToken(&u.User)
		if err != nil {
			zap.L().Error("token issue failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro no login"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user": echo.Map{
				"id":         u.ID,
				"name":       u.Name,
				"email":      u.Email,
				"role":       u.Role,
				"store_id":   u.StoreID,
				"store_name": u.StoreName,
			},
		})
	})
}
