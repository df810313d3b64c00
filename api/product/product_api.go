package product

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	"github.com/DuJao22/Comercio-pro/config"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
	productRepo "github.com/DuJao22/Comercio-pro/model/repository/product"
	"github.com/DuJao22/Comercio-pro/service/ledger"
	"github.com/DuJao22/Comercio-pro/service/media"
	"github.com/DuJao22/Comercio-pro/service/search"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

type productPayload struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Weight        float64 `json:"weight"`
	Unit          string  `json:"unit"`
	StockQuantity float64 `json:"stock_quantity"`
	Image         string  `json:"image"`
	StoreID       uint    `json:"store_id"`
}

type productionPayload struct {
	SourceProductID  uint    `json:"source_product_id"`
	TargetProductID  uint    `json:"target_product_id"`
	QuantityProduced float64 `json:"quantity_produced"`
	QuantityConsumed float64 `json:"quantity_consumed"`
}

func RegisterProductRoutes(g *echo.Group, db *gorm.DB) {
	products := productRepo.GetProductRepository(db)
	led := ledger.New(db)
	searchSvc := search.GetService()

	// GET /api/products – store-scoped for admins, global with store names
	// for superadmins
	g.GET("/products", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		if claims.IsSuperadmin() {
			rows, err := products.ListAllWithStoreName()
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar produtos"})
			}
			return c.JSON(http.StatusOK, rows)
		}
		if claims.StoreID == nil {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "Acesso negado"})
		}
		rows, err := products.ListByStore(*claims.StoreID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar produtos"})
		}
		return c.JSON(http.StatusOK, rows)
	})

	g.POST("/products", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		var body productPayload
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if strings.TrimSpace(body.Name) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Nome é obrigatório"})
		}
		if body.StockQuantity < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Estoque não pode ser negativo"})
		}

		storeID := body.StoreID
		if !claims.IsSuperadmin() {
			if claims.StoreID == nil {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Acesso negado"})
			}
			storeID = *claims.StoreID
		} else if storeID == 0 {
			storeID = 1
		}

		p := entity.Product{
			StoreID:       storeID,
			Name:          body.Name,
			Description:   body.Description,
			Category:      body.Category,
			Weight:        body.Weight,
			Unit:          body.Unit,
			StockQuantity: body.StockQuantity,
			Image:         body.Image,
		}
		if err := products.Create(&p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao criar produto"})
		}
		indexAsync(searchSvc, &p)
		return c.JSON(http.StatusOK, echo.Map{"id": p.ID})
	})

	// PUT /api/products/:id – routes through the ledger so stock overrides
	// leave an audit movement
	g.PUT("/products/:id", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ID inválido"})
		}
		var body productPayload
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		err = led.ApplyProductEdit(id, claims.UserID, ledger.ProductEdit{
			Name:          body.Name,
			Description:   body.Description,
			Category:      body.Category,
			Weight:        body.Weight,
			Unit:          body.Unit,
			StockQuantity: body.StockQuantity,
			Image:         body.Image,
		})
		if err != nil {
			return api.LedgerError(c, err)
		}
		if p, err := products.FindByID(id); err == nil {
			indexAsync(searchSvc, p)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	g.DELETE("/products/:id", func(c echo.Context) error {
		if _, ok := api.Actor(c); !ok {
			return nil
		}
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ID inválido"})
		}
		if err := products.Delete(id); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao deletar produto"})
		}
		if err := searchSvc.Delete(context.Background(), id); err != nil {
			zap.L().Warn("search deindex failed", zap.Uint("product_id", id), zap.Error(err))
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	// POST /api/products/production – bulk-to-retail split (paired
	// debit/credit through the ledger)
	g.POST("/products/production", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		var body productionPayload
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		err := led.RecordProduction(ledger.ProductionInput{
			SourceProductID:  body.SourceProductID,
			TargetProductID:  body.TargetProductID,
			QuantityProduced: body.QuantityProduced,
			QuantityConsumed: body.QuantityConsumed,
			ActorID:          claims.UserID,
		})
		if err != nil {
			return api.LedgerError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true})
	})

	// GET /api/products/search?q= – Elasticsearch when configured, SQL
	// LIKE otherwise
	g.GET("/products/search", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		q := strings.TrimSpace(c.QueryParam("q"))
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Parâmetro q é obrigatório"})
		}
		var storeID *uint
		if !claims.IsSuperadmin() {
			storeID = claims.StoreID
		}
		if searchSvc.Enabled() {
			docs, err := searchSvc.Search(c.Request().Context(), storeID, q)
			if err == nil {
				return c.JSON(http.StatusOK, docs)
			}
			zap.L().Warn("search backend failed, falling back to SQL", zap.Error(err))
		}
		rows, err := products.SearchLike(storeID, q)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao buscar produtos"})
		}
		return c.JSON(http.StatusOK, rows)
	})

	// POST /api/products/:id/image – multipart upload, stored as webp
	g.POST("/products/:id/image", func(c echo.Context) error {
		if _, ok := api.Actor(c); !ok {
			return nil
		}
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ID inválido"})
		}
		if _, err := products.FindByID(id); err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Produto não encontrado"})
		}
		file, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Arquivo de imagem é obrigatório"})
		}
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Erro ao ler imagem"})
		}
		defer src.Close()

		uri, err := media.SaveProductImage(config.AppConfig.MediaDir, id, src)
		if err != nil {
			zap.L().Error("image save failed", zap.Uint("product_id", id), zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao salvar imagem"})
		}
		if err := products.UpdateImage(id, uri); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao salvar imagem"})
		}
		return c.JSON(http.StatusOK, echo.Map{"image": uri})
	})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func indexAsync(svc *search.Service, p *entity.Product) {
	if !svc.Enabled() {
		return
	}
	go func() {
		if err := svc.Index(context.Background(), p); err != nil {
			zap.L().Warn("search index failed", zap.Uint("product_id", p.ID), zap.Error(err))
		}
	}()
}
