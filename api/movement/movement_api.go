package movement

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	"github.com/DuJao22/Comercio-pro/config"
	productRepo "github.com/DuJao22/Comercio-pro/model/repository/product"
	"github.com/DuJao22/Comercio-pro/service/ledger"
	reportService "github.com/DuJao22/Comercio-pro/service/report"
)

func init() {
	api.RegisterModule(RegisterMovementRoutes)
}

type movementPayload struct {
	ProductID      uint    `json:"product_id"`
	Type           string  `json:"type"`
	Quantity       float64 `json:"quantity"`
	Observation    string  `json:"observation"`
	ClientName     string  `json:"client_name"`
	ClientContact  string  `json:"client_contact"`
	PaymentStatus  string  `json:"payment_status"`
	PaymentDueDate string  `json:"payment_due_date"`
	// Fractional sale: when set on an `out` movement, quantity is derived
	// from the sale weight against the product's reference weight.
	SaleWeight float64 `json:"sale_weight"`
	SaleUnit   string  `json:"sale_unit"`
}

func RegisterMovementRoutes(g *echo.Group, db *gorm.DB) {
	products := productRepo.GetProductRepository(db)
	led := ledger.New(db)
	reports, reportsErr := reportService.NewService(db, config.RedisClient)

	g.POST("/movements", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		var body movementPayload
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		quantity := body.Quantity
		if body.SaleWeight > 0 {
			p, err := products.FindByID(body.ProductID)
			if err != nil {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "Produto não encontrado"})
			}
			quantity, err = ledger.DeriveFraction(body.SaleWeight, body.SaleUnit, p.Weight, p.Unit)
			if err != nil {
				return api.LedgerError(c, err)
			}
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

		newQty, err := led.RecordMovement(ledger.MovementInput{
			ProductID:      body.ProductID,
			Type:           body.Type,
			Quantity:       quantity,
			ActorID:        claims.UserID,
			Observation:    body.Observation,
			ClientName:     body.ClientName,
			ClientContact:  body.ClientContact,
			PaymentStatus:  body.PaymentStatus,
			PaymentDueDate: dueDate,
		})
		if err != nil {
			return api.LedgerError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "newQuantity": newQty})
	})

	g.GET("/movements", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		if reportsErr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar movimentações"})
		}
		rows, err := reports.RecentMovements(claims, 100)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar movimentações"})
		}
		return c.JSON(http.StatusOK, rows)
	})
}
