package repository

import (
	"storecare-backend/internal/model"

	"gorm.io/gorm"
)

type ChecklistRepository interface {
	Create(cl *model.Checklist) error
	Update(cl *model.Checklist) error
	GetByID(id uint) (*model.Checklist, error)
	FindByAssignee(userID, storeID uint, workDate string) ([]model.Checklist, error)
	FindByStoreAndDate(storeID uint, workDate string) ([]model.Checklist, error)
}

type checklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &checklistRepository{db}
}

func (r *checklistRepository) Create(cl *model.Checklist) error {
	return r.db.Create(cl).Error
}

func (r *checklistRepository) Update(cl *model.Checklist) error {
	return r.db.Save(cl).Error
}

func (r *checklistRepository) GetByID(id uint) (*model.Checklist, error) {
	var cl model.Checklist
	err := r.db.First(&cl, id).Error
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *checklistRepository) FindByAssignee(userID, storeID uint, workDate string) ([]model.Checklist, error) {
	var list []model.Checklist
	err := r.db.
		Where("assigned_user_id = ? AND store_id = ? AND work_date = ?", userID, storeID, workDate).
		Find(&list).Error
	return list, err
}

func (r *checklistRepository) FindByStoreAndDate(storeID uint, workDate string) ([]model.Checklist, error) {
	var list []model.Checklist
	err := r.db.
		Where("store_id = ? AND work_date = ?", storeID, workDate).
		Find(&list).Error
	return list, err
}
