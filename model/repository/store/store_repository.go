package store

import (
	"sync"

	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

type StoreRepository struct {
	db *gorm.DB
}

var (
	instance *StoreRepository
	once     sync.Once
)

func GetStoreRepository(db *gorm.DB) *StoreRepository {
	once.Do(func() {
		instance = &StoreRepository{db: db}
	})
	return instance
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) List() ([]entity.Store, error) {
	var stores []entity.Store
	err := r.db.Order("id").Find(&stores).Error
	return stores, err
}

func (r *StoreRepository) FindByID(id uint) (*entity.Store, error) {
	var s entity.Store
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) Create(s *entity.Store) error {
	return r.db.Create(s).Error
}
