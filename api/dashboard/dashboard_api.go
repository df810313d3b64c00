package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/api"
	"github.com/DuJao22/Comercio-pro/config"
	reportService "github.com/DuJao22/Comercio-pro/service/report"
)

func init() {
	api.RegisterModule(RegisterDashboardRoutes)
}

// RegisterDashboardRoutes mounts GET /api/dashboard: role-scoped stats,
// recent movements, the sales-by-day chart series, financial buckets for
// superadmins and low-stock alerts for store admins.
func RegisterDashboardRoutes(g *echo.Group, db *gorm.DB) {
	svc, svcErr := reportService.NewService(db, config.RedisClient)

	g.GET("/dashboard", func(c echo.Context) error {
		claims, ok := api.Actor(c)
		if !ok {
			return nil
		}
		if svcErr != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao carregar dashboard"})
		}
		stats, err := svc.Dashboard(claims)
		if err != nil {
			zap.L().Error("dashboard build failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Erro ao carregar dashboard"})
		}
		return c.JSON(http.StatusOK, stats)
	})
}
