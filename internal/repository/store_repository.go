package repository

import (
	"storecare-backend/internal/model"

	"gorm.io/gorm"
)

type StoreRepository interface {
	GetActiveByID(id uint) (*model.Store, error)
	GetAssigned(userID uint) ([]model.Store, error)
	GetByCompany(companyID uint) ([]model.Store, error)
	IsAssigned(userID, storeID uint) (bool, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db}
}

func (r *storeRepository) GetActiveByID(id uint) (*model.Store, error) {
	var store model.Store
	err := r.db.Where("service_active = ?", true).First(&store, id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetAssigned(userID uint) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.
		Joins("JOIN store_assigns ON store_assigns.store_id = stores.id").
		Where("store_assigns.user_id = ? AND stores.service_active = ? AND store_assigns.deleted_at IS NULL", userID, true).
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) GetByCompany(companyID uint) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.
		Where("company_id = ? AND service_active = ?", companyID, true).
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) IsAssigned(userID, storeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.StoreAssign{}).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Count(&count).Error
	return count > 0, err
}
