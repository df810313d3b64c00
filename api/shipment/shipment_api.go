package shipment

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
	shipmentRepo "github.com/DuJao22/Comercio-pro/model/repository/shipment"
	"github.com/DuJao22/Comercio-pro/service/ledger"
)

func init() {
	api.RegisterModule(RegisterShipmentRoutes)
}

// validTransitions is the pending -> sent -> received lifecycle.
var validTransitions = map[string]string{
	entity.ShipmentPending: entity.ShipmentSent,
	entity.ShipmentSent:    entity.ShipmentReceived,
}

// RegisterShipmentRoutes mounts inter-store shipments (superadmin only).
// The receipt transition reconciles the shipment into the stock ledger.
func RegisterShipmentRoutes(g *echo.Group, db *gorm.DB) {
	shipments := shipmentRepo.GetShipmentRepository(db)
	led := ledger.New(db)

	g.GET("/shipments", func(c echo.Context) error {
		if _, ok := api.Superadmin(c); !ok {
			return nil
		}
		rows, err := shipments.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar remessas"})
		}
		return c.JSON(http.StatusOK, rows)
	})

	g.POST("/shipments", func(c echo.Context) error {
		if _, ok := api.Superadmin(c); !ok {
			return nil
		}
		var body struct {
			ProductName        string  `json:"product_name"`
			Quantity           float64 `json:"quantity"`
			DestinationStoreID uint    `json:"destination_store_id"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if strings.TrimSpace(body.ProductName) == "" || body.Quantity <= 0 || body.DestinationStoreID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Produto, quantidade e loja de destino são obrigatórios"})
		}
		sh := entity.Shipment{
			ProductName:        strings.TrimSpace(body.ProductName),
			Quantity:           body.Quantity,
			DestinationStoreID: body.DestinationStoreID,
			Status:             entity.ShipmentPending,
		}
		if err := shipments.Create(&sh); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao criar remessa"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "id": sh.ID})
	})

	g.PUT("/shipments/:id/status", func(c echo.Context) error {
		claims, ok := api.Superadmin(c)
		if !ok {
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

		sh, err := shipments.FindByID(uint(id))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Remessa não encontrada"})
		}
		if validTransitions[sh.Status] != body.Status {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Transição de status inválida"})
		}

		if body.Status == entity.ShipmentReceived {
			// status flip, product soft-link and `in` movement commit together
			target, err := led.ReceiveShipment(sh, claims.UserID)
			if err != nil {
				return api.LedgerError(c, err)
			}
			return c.JSON(http.StatusOK, echo.Map{"success": true, "product_id": target.ID})
		}

		if err := shipments.UpdateStatus(uint(id), body.Status); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao atualizar remessa"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})
}
