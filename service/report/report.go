package report

import (
	"encoding/json"
	"net/url"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DuJao22/Comercio-pro/config"
	"github.com/DuJao22/Comercio-pro/core/auth"
	entity "github.com/DuJao22/Comercio-pro/model/entity"
	productRepo "github.com/DuJao22/Comercio-pro/model/repository/product"
	reportRepo "github.com/DuJao22/Comercio-pro/model/repository/report"
	userRepo "github.com/DuJao22/Comercio-pro/model/repository/user"
)

const (
	superCacheKey = "dashboard:superadmin"
	superCacheTTL = 30 * time.Second
)

// Service assembles role-scoped dashboard stats. The superadmin view is
// cached in redis for a short TTL when redis is configured; store views
// always read committed state.
type Service struct {
	reports  *reportRepo.ReportRepository
	products *productRepo.ProductRepository
	users    *userRepo.UserRepository
	rdb      *redis.Client
}

func NewService(db *gorm.DB, rdb *redis.Client) (*Service, error) {
	reports, err := reportRepo.NewReportRepository(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		reports:  reports,
		products: productRepo.NewProductRepository(db),
		users:    userRepo.NewUserRepository(db),
		rdb:      rdb,
	}, nil
}

// LowStockProduct is a product under the threshold plus the wa.me deep
// link for contacting the store admin about a restock.
type LowStockProduct struct {
	entity.Product
	WhatsappLink string `json:"whatsapp_link,omitempty"`
}

// Dashboard returns the stats payload for the actor's role.
func (s *Service) Dashboard(claims *auth.Claims) (map[string]interface{}, error) {
	if claims.IsSuperadmin() {
		return s.superadminDashboard()
	}
	return s.storeDashboard(claims)
}

func (s *Service) superadminDashboard() (map[string]interface{}, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(config.RedisCtx(), superCacheKey).Result(); err == nil {
			var stats map[string]interface{}
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	stats := map[string]interface{}{}
	var err error
	if stats["totalStores"], err = s.reports.CountStores(); err != nil {
		return nil, err
	}
	if stats["totalProducts"], err = s.reports.CountProducts(nil); err != nil {
		return nil, err
	}
	if stats["totalMovements"], err = s.reports.CountMovements(nil); err != nil {
		return nil, err
	}
	if stats["recentMovements"], err = s.reports.RecentMovements(nil, 5); err != nil {
		return nil, err
	}
	if stats["salesByDay"], err = s.reports.SalesByDay(nil, 7); err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	paid, err := s.reports.FinancialPaid(10)
	if err != nil {
		return nil, err
	}
	pending, err := s.reports.FinancialPending(today, 10)
	if err != nil {
		return nil, err
	}
	overdue, err := s.reports.FinancialOverdue(today)
	if err != nil {
		return nil, err
	}
	stats["financial"] = map[string]interface{}{
		"paid":    paid,
		"pending": pending,
		"overdue": overdue,
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(config.RedisCtx(), superCacheKey, raw, superCacheTTL).Err(); err != nil {
				zap.L().Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *Service) storeDashboard(claims *auth.Claims) (map[string]interface{}, error) {
	if claims.StoreID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	storeID := *claims.StoreID

	stats := map[string]interface{}{}
	var err error
	if stats["totalProducts"], err = s.reports.CountProducts(&storeID); err != nil {
		return nil, err
	}
	if stats["totalMovements"], err = s.reports.CountMovements(&storeID); err != nil {
		return nil, err
	}
	if stats["salesByDay"], err = s.reports.SalesByDay(&storeID, 7); err != nil {
		return nil, err
	}
	if stats["recentMovements"], err = s.reports.RecentMovements(&storeID, 5); err != nil {
		return nil, err
	}

	low, err := s.products.LowStock(storeID, config.AppConfig.LowStockThreshold)
	if err != nil {
		return nil, err
	}
	phone := ""
	if u, err := s.users.FindByID(claims.UserID); err == nil {
		phone = u.Phone
	}
	lowStock := make([]LowStockProduct, 0, len(low))
	for _, p := range low {
		lowStock = append(lowStock, LowStockProduct{
			Product:      p,
			WhatsappLink: WhatsappLink(phone, "Estoque baixo: "+p.Name),
		})
	}
	stats["lowStock"] = lowStock
	return stats, nil
}

var nonDigits = regexp.MustCompile(`\D`)

// WhatsappLink builds a wa.me deep link for the given phone and message.
// Empty phone yields an empty link (the UI hides the button).
func WhatsappLink(phone, text string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text)
}

// RecentMovements lists the ledger for the actor's scope (store admins see
// their store, superadmins everything).
func (s *Service) RecentMovements(claims *auth.Claims, limit int) ([]reportRepo.MovementRow, error) {
	if claims.IsSuperadmin() {
		return s.reports.RecentMovements(nil, limit)
	}
	if claims.StoreID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.reports.RecentMovements(claims.StoreID, limit)
}
