package user

import (
	"sync"

	"gorm.io/gorm"

	entity "github.com/DuJao22/Comercio-pro/model/entity"
)

type UserRepository struct {
	db *gorm.DB
}

var (
	instance *UserRepository
	once     sync.Once
)

func GetUserRepository(db *gorm.DB) *UserRepository {
	once.Do(func() {
		instance = &UserRepository{db: db}
	})
	return instance
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UserWithStore is a user row joined with its store name. Password is
// carried for the login check and must not be serialized.
type UserWithStore struct {
	entity.User
	StoreName string `json:"store_name,omitempty"`
}

func (r *UserRepository) FindByEmail(email string) (*UserWithStore, error) {
	var u UserWithStore
	err := r.db.Table("users u").
		Select("u.*, s.name AS store_name").
		Joins("LEFT JOIN stores s ON u.store_id = s.id").
		Where("u.email = ?", email).
		Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListWithStoreName() ([]UserWithStore, error) {
	var users []UserWithStore
	err := r.db.Table("users u").
		Select("u.id, u.name, u.email, u.role, u.store_id, u.phone, s.name AS store_name").
		Joins("LEFT JOIN stores s ON u.store_id = s.id").
		Order("u.id").
		Scan(&users).Error
	return users, err
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.db.Delete(&entity.User{}, id).Error
}

func (r *UserRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).
		UpdateColumn("password", hash).Error
}

func (r *UserRepository) UpdateProfile(id uint, name, email string) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"name": name, "email": email}).Error
}
