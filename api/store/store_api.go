package store

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
	storeRepo "github.com/DuJao22/Comercio-pro/model/repository/store"
)

func init() {
	api.RegisterModule(RegisterStoreRoutes)
}

func RegisterStoreRoutes(g *echo.Group, db *gorm.DB) {
	stores := storeRepo.GetStoreRepository(db)

	g.GET("/stores", func(c echo.Context) error {
		if _, ok := api.Actor(c); !ok {
			return nil
		}
		rows, err := stores.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar lojas"})
		}
		return c.JSON(http.StatusOK, rows)
	})

	g.POST("/stores", func(c echo.Context) error {
		if _, ok := api.Superadmin(c); !ok {
			return nil
		}
		var body struct {
			Name     string `json:"name"`
			Location string `json:"location"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if strings.TrimSpace(body.Name) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Nome é obrigatório"})
		}
		s := entity.Store{Name: body.Name, Location: body.Location}
		if err := stores.Create(&s); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao criar loja"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "id": s.ID})
	})
}
