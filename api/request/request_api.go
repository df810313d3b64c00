package request

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
	requestRepo "github.com/DuJao22/Comercio-pro/model/repository/request"
)

func init() {
	api.RegisterModule(RegisterRequestRoutes)
}

// RegisterRequestRoutes mounts the client restock request lifecycle.
// Completing a request does not touch the movement ledger; the stock
// leaves through a regular sale movement when the goods change hands.
func RegisterRequestRoutes(g *echo.Group, db *gorm.DB) {
	requests := requestRepo.GetRequestRepository(db)

	g.GET("/requests", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		var (
			rows []requestRepo.RequestRow
			err  error
		)
		if claims.IsSuperadmin() {
			rows, err = requests.ListAll()
		} else if claims.StoreID != nil {
			rows, err = requests.ListForStore(*claims.StoreID)
		} else {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Acesso negado"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar encomendas"})
		}
		return c.JSON(http.StatusOK, rows)
	})

	g.POST("/requests", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		var body struct {
			StoreID        uint    `json:"store_id"`
			ProductID      uint    `json:"product_id"`
			Quantity       float64 `json:"quantity"`
			ClientName     string  `json:"client_name"`
			ClientPhone    string  `json:"client_phone"`
			PaymentStatus  string  `json:"payment_status"`
			PaymentDueDate string  `json:"payment_due_date"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.ProductID == 0 || body.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Produto e quantidade são obrigatórios"})
		}

		storeID := body.StoreID
		if !claims.IsSuperadmin() {
			if claims.StoreID == nil {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Acesso negado"})
			}
			storeID = *claims.StoreID
		}
		if storeID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Loja é obrigatória"})
		}

		var dueDate *datatypes.Date
		if body.PaymentDueDate != "" {
			t, err := time.Parse("2006-01-02", body.PaymentDueDate)
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "Data de vencimento inválida"})
			}
			d := datatypes.Date(t)
			dueDate = &d
		}

		req := entity.Request{
			StoreID:        storeID,
			ProductID:      body.ProductID,
			Quantity:       body.Quantity,
			Status:         entity.RequestPending,
			ClientName:     body.ClientName,
			ClientPhone:    body.ClientPhone,
			PaymentStatus:  body.PaymentStatus,
			PaymentDueDate: dueDate,
		}
		if err := requests.Create(&req); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao criar encomenda"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "id": req.ID})
	})

	g.PUT("/requests/:id/status", func(c echo.Context) error {
		if _, ok := api.Actor(c); !ok {
			return nil
		}
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ID inválido"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Status != entity.RequestPending && body.Status != entity.RequestCompleted {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Status inválido"})
		}
		if _, err := requests.FindByID(uint(id)); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Encomenda não encontrada"})
		}
		if err := requests.UpdateStatus(uint(id), body.Status); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao atualizar encomenda"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
