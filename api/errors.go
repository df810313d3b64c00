package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/service/ledger"
)

// LedgerError maps the ledger taxonomy to HTTP responses: NotFound -> 404,
// InsufficientStock -> 400 with the available quantity, ValidationError ->
// 400, anything else -> logged 500. The transaction already rolled back by
// the time an error reaches here.
func LedgerError(c echo.Context, err error) error {
	var insufficient *ledger.InsufficientStockError
	var invalid *ledger.ValidationError
	switch {
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Produto não encontrado"})
	case errors.As(err, &insufficient):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":     "Estoque insuficiente",
			"available": insufficient.Available,
		})
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": invalid.Msg})
	default:
		zap.L().Error("ledger operation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro interno"})
	}
}
