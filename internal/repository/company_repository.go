package repository

import (
	"storecare-backend/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository interface {
	GetAll() ([]model.Company, error)
	GetByID(id uint) (*model.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db}
}

func (r *companyRepository) GetAll() ([]model.Company, error) {
	var companies []model.Company
	err := r.db.Find(&companies).Error
	return companies, err
}

func (r *companyRepository) GetByID(id uint) (*model.Company, error) {
	var company model.Company
	err := r.db.First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}
