package shipment

import (
	"sync"

	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

type ShipmentRepository struct {
	db *gorm.DB
}

var (
	instance *ShipmentRepository
	once     sync.Once
)

func GetShipmentRepository(db *gorm.DB) *ShipmentRepository {
	once.Do(func() {
		instance = &ShipmentRepository{db: db}
	})
	return instance
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// ShipmentRow is a shipment joined with the destination store name.
type ShipmentRow struct {
	entity.Shipment
	StoreName string `json:"store_name"`
}

func (r *ShipmentRepository) List() ([]ShipmentRow, error) {
	var rows []ShipmentRow
	err := r.db.Table("shipments sh").
		Select("sh.*, s.name AS store_name").
		Joins("JOIN stores s ON sh.destination_store_id = s.id").
		Order("sh.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ShipmentRepository) FindByID(id uint) (*entity.Shipment, error) {
	var sh entity.Shipment
	if err := r.db.First(&sh, id).Error; err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *ShipmentRepository) Create(sh *entity.Shipment) error {
	return r.db.Create(sh).Error
}

func (r *ShipmentRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&entity.Shipment{}).Where("id = ?", id).
		UpdateColumn("status", status).Error
}
