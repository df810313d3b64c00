package user

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	coreAuth "github.com/DuJao22/Comercio-pro/core/auth"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
	userRepo "github.com/DuJao22/Comercio-pro/model/repository/user"
)

func init() {
	api.RegisterModule(RegisterUserRoutes)
}

// RegisterUserRoutes mounts user management (superadmin-only) and the
// self-service profile endpoint.
func RegisterUserRoutes(g *echo.Group, db *gorm.DB) {
	users := userRepo.GetUserRepository(db)

	g.GET("/users", func(c echo.Context) error {
		if _, ok := api.Superadmin(c); !ok {
			return nil
		}
		rows, err := users.ListWithStoreName()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar usuários"})
		}
		return c.JSON(http.StatusOK, rows)
	})

	g.POST("/users", func(c echo.Context) error {
		if _, ok := api.Superadmin(c); !ok {
			return nil
		}
		var body struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
			StoreID  *uint  `json:"store_id"`
			Phone    string `json:"phone"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Role != entity.RoleAdmin && body.Role != entity.RoleSuperadmin {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Papel inválido"})
		}
		if len(body.Password) < 6 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Senha deve ter pelo menos 6 caracteres"})
		}
		hash, err := coreAuth.HashPassword(body.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao criar usuário"})
		}
		u := entity.User{
			Name:     body.Name,
			Email:    body.Email,
			Password: hash,
			Role:     body.Role,
			StoreID:  body.StoreID,
			Phone:    body.Phone,
		}
		if err := users.Create(&u); err != nil {
			if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "Duplicate") {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email já cadastrado"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao criar usuário"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "id": u.ID})
	})

	g.PUT("/users/:id/reset-password", func(c echo.Context) error {
		if _, ok := api.Superadmin(c); !ok {
			return nil
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ID inválido"})
		}
		var body struct {
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Password) < 6 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Senha deve ter pelo menos 6 caracteres"})
		}
		hash, err := coreAuth.HashPassword(body.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao redefinir senha"})
		}
		if err := users.UpdatePassword(uint(id), hash); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao redefinir senha"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	g.DELETE("/users/:id", func(c echo.Context) error {
		claims, ok := api.Superadmin(c)
		if !ok {
			return nil
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ID inválido"})
		}
		if uint(id) == claims.UserID {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Não é possível excluir o próprio usuário"})
		}
		if err := users.Delete(uint(id)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao excluir usuário"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	// PUT /api/profile – self-service name/email/password update; a
	// password change requires the current password
	g.PUT("/profile", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		var body struct {
			Name            string `json:"name"`
			Email           string `json:"email"`
			Password        string `json:"password"`
			CurrentPassword string `json:"currentPassword"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		u, err := users.FindByID(claims.UserID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Usuário não encontrado"})
		}

		if body.Password != "" {
			if body.CurrentPassword == "" || !coreAuth.CheckPassword(u.Password, body.CurrentPassword) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "Senha atual incorreta"})
			}
			hash, err := coreAuth.HashPassword(body.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao atualizar perfil"})
			}
			if err := users.UpdatePassword(u.ID, hash); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao atualizar perfil"})
			}
		}

		if body.Name != "" || body.Email != "" {
			name := body.Name
			if name == "" {
				name = u.Name
			}
			email := body.Email
			if email == "" {
				email = u.Email
			}
			if err := users.UpdateProfile(u.ID, name, email); err != nil {
				if strings.Contains(err.Error(), "UNIQUE") || strings.Contains(err.Error(), "Duplicate") {
					return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email já cadastrado"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao atualizar perfil"})
			}
		}

		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
