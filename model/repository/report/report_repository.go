package report

import (
	"database/sql"
	"sync"

	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

type ReportRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

var (
	instance *ReportRepository
	once     sync.Once
)

func GetReportRepository(db *gorm.DB) (*ReportRepository, error) {
	var err error
	once.Do(func() {
		instance, err = NewReportRepository(db)
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func NewReportRepository(db *gorm.DB) (*ReportRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &ReportRepository{db: db, sqlDB: sqlDB}, nil
}

// dayExpr returns the SQL expression grouping a timestamp column by day,
// per dialect (sqlite for small deployments and tests, mysql otherwise).
func (r *ReportRepository) dayExpr(col string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m-%d', " + col + ")"
	}
	return "DATE_FORMAT(" + col + ", '%Y-%m-%d')"
}

func (r *ReportRepository) CountStores() (int64, error) {
	var n int64
	err := r.db.Model(&entity.Store{}).Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountProducts(storeID *uint) (int64, error) {
	tx := r.db.Model(&entity.Product{})
	if storeID != nil {
		tx = tx.Where("store_id = ?", *storeID)
	}
	var n int64
	err := tx.Count(&n).Error
	return n, err
}

func (r *ReportRepository) CountMovements(storeID *uint) (int64, error) {
	if storeID == nil {
		var n int64
		err := r.db.Model(&entity.Movement{}).Count(&n).Error
		return n, err
	}
	const query = `SELECT count(*) FROM movements m JOIN products p ON m.product_id = p.id WHERE p.store_id = ?`
	var n int64
	err := r.sqlDB.QueryRow(query, *storeID).Scan(&n)
	return n, err
}

// MovementRow is a ledger entry joined with product and actor names.
type MovementRow struct {
	entity.Movement
	ProductName string `json:"product_name"`
	UserName    string `json:"user_name"`
}

func (r *ReportRepository) RecentMovements(storeID *uint, limit int) ([]MovementRow, error) {
	tx := r.db.Table("movements m").
		Select("m.*, p.name AS product_name, u.name AS user_name").
		Joins("JOIN products p ON m.product_id = p.id").
		Joins("JOIN users u ON m.user_id = u.id").
		Order("m.timestamp DESC").
		Limit(limit)
	if storeID != nil {
		tx = tx.Where("p.store_id = ?", *storeID)
	}
	var rows []MovementRow
	err := tx.Scan(&rows).Error
	return rows, err
}

// SalesByDay is one bar of the dashboard chart.
type SalesByDay struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

func (r *ReportRepository) SalesByDay(storeID *uint, limit int) ([]SalesByDay, error) {
	day := r.dayExpr("m.timestamp")
	tx := r.db.Table("movements m").
		Select(day + " AS date, SUM(m.quantity) AS total").
		Where("m.type = ?", entity.MovementOut).
		Group("date").
		Order("date ASC").
		Limit(limit)
	if storeID != nil {
		tx = tx.Joins("JOIN products p ON m.product_id = p.id").
			Where("p.store_id = ?", *storeID)
	}
	var rows []SalesByDay
	err := tx.Scan(&rows).Error
	return rows, err
}

// FinancialRow is an outbound sale movement joined with store and product
// names, for the superadmin payment report.
type FinancialRow struct {
	entity.Movement
	StoreName   string `json:"store_name"`
	ProductName string `json:"product_name"`
}

func (r *ReportRepository) financial(cond string, args []interface{}, order string, limit int) ([]FinancialRow, error) {
	tx := r.db.Table("movements m").
		Select("m.*, s.name AS store_name, p.name AS product_name").
		Joins("JOIN products p ON m.product_id = p.id").
		Joins("JOIN stores s ON p.store_id = s.id").
		Where("m.type = ?", entity.MovementOut).
		Where(cond, args...).
		Order(order)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var rows []FinancialRow
	err := tx.Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) FinancialPaid(limit int) ([]FinancialRow, error) {
	return r.financial("m.payment_status = ?", []interface{}{entity.PaymentPaid}, "m.timestamp DESC", limit)
}

// FinancialPending returns pending sales due today or later (or undated).
func (r *ReportRepository) FinancialPending(today string, limit int) ([]FinancialRow, error) {
	return r.financial(
		"m.payment_status = ? AND (m.payment_due_date >= ? OR m.payment_due_date IS NULL)",
		[]interface{}{entity.PaymentPending, today},
		"m.payment_due_date ASC", limit)
}

// FinancialOverdue returns pending sales whose due date has passed.
func (r *ReportRepository) FinancialOverdue(today string) ([]FinancialRow, error) {
	return r.financial(
		"m.payment_status = ? AND m.payment_due_date < ?",
		[]interface{}{entity.PaymentPending, today},
		"m.payment_due_date ASC", 0)
}

// CountOverdue is the payment-sweep fast path.
func (r *ReportRepository) CountOverdue(today string) (int64, error) {
	const query = `SELECT count(*) FROM movements WHERE type = 'out' AND payment_status = 'pending' AND payment_due_date < ?`
	var n int64
	err := r.sqlDB.QueryRow(query, today).Scan(&n)
	return n, err
}
