package product

import (
	"sync"

	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

type ProductRepository struct {
	db *gorm.DB
}

var (
	instance *ProductRepository
	once     sync.Once
)

// GetProductRepository returns the singleton repository for the given DB.
func GetProductRepository(db *gorm.DB) *ProductRepository {
	once.Do(func() {
		instance = &ProductRepository{db: db}
	})
	return instance
}

// NewProductRepository builds a non-singleton repository (tests, CLI).
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ProductWithStore is a product row joined with its store name, for
// superadmin listings.
type ProductWithStore struct {
	entity.Product
	StoreName string `json:"store_name"`
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListByStore(storeID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("store_id = ?", storeID).Order("id").Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListAllWithStoreName() ([]ProductWithStore, error) {
	var rows []ProductWithStore
	err := r.db.Table("products p").
		Select("p.*, s.name AS store_name").
		Joins("LEFT JOIN stores s ON p.store_id = s.id").
		Order("p.id").
		Scan(&rows).Error
	return rows, err
}

// FindByNameInStore is the shipment soft-link lookup: exact name match
// within the destination store.
func (r *ProductRepository) FindByNameInStore(storeID uint, name string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Where("store_id = ? AND name = ?", storeID, name).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Product{}, id).Error
}

func (r *ProductRepository) UpdateImage(id uint, image string) error {
	return r.db.Model(&entity.Product{}).Where("id = ?", id).
		UpdateColumn("image", image).Error
}

// LowStock returns the store's products under the threshold.
func (r *ProductRepository) LowStock(storeID uint, threshold float64) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Where("store_id = ? AND stock_quantity < ?", storeID, threshold).
		Order("stock_quantity").Find(&products).Error
	return products, err
}

// SearchLike is the SQL fallback for product search when Elasticsearch is
// not configured. storeID nil searches across all stores.
func (r *ProductRepository) SearchLike(storeID *uint, q string) ([]entity.Product, error) {
	like := "%" + q + "%"
	tx := r.db.Where("(name LIKE ? OR category LIKE ? OR description LIKE ?)", like, like, like)
	if storeID != nil {
		tx = tx.Where("store_id = ?", *storeID)
	}
	var products []entity.Product
	err := tx.Order("name").Limit(50).Find(&products).Error
	return products, err
}
