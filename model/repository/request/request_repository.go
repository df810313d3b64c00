package request

import (
	"sync"

	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

type RequestRepository struct {
	db *gorm.DB
}

var (
	instance *RequestRepository
	once     sync.Once
)

func GetRequestRepository(db *gorm.DB) *RequestRepository {
	once.Do(func() {
		instance = &RequestRepository{db: db}
	})
	return instance
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// RequestRow is a request joined with store and product names for listing.
type RequestRow struct {
	entity.Request
	StoreName   string `json:"store_name"`
	ProductName string `json:"product_name"`
}

func (r *RequestRepository) list(storeID *uint) ([]RequestRow, error) {
	tx := r.db.Table("requests r").
		Select("r.*, s.name AS store_name, p.name AS product_name").
		Joins("JOIN stores s ON r.store_id = s.id").
		Joins("JOIN products p ON r.product_id = p.id").
		Order("r.created_at DESC")
	if storeID != nil {
		tx = tx.Where("r.store_id = ?", *storeID)
	}
	var rows []RequestRow
	err := tx.Scan(&rows).Error
	return rows, err
}

func (r *RequestRepository) ListAll() ([]RequestRow, error) {
	return r.list(nil)
}

func (r *RequestRepository) ListForStore(storeID uint) ([]RequestRow, error) {
	return r.list(&storeID)
}

func (r *RequestRepository) FindByID(id uint) (*entity.Request, error) {
	var req entity.Request
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) Create(req *entity.Request) error {
	return r.db.Create(req).Error
}

func (r *RequestRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&entity.Request{}).Where("id = ?", id).
		UpdateColumn("status", status).Error
}
