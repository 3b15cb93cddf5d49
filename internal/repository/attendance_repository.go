package repository

import (
	"errors"
	"fmt"

	"storecare-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(att *model.Attendance) error
	Update(att *model.Attendance) error
	GetByID(id uint) (*model.Attendance, error)
	FindOpenByUserInDates(userID uint, dates []string) ([]model.Attendance, error)
	FindOpenByUserStoreInDates(userID, storeID uint, dates []string) (*model.Attendance, error)
	LatestOpenByUserStore(userID, storeID uint) (*model.Attendance, error)
	GetHistory(userID uint) ([]model.Attendance, error)
	GetByMonth(userID uint, month, year string) ([]model.Attendance, error)
	GetByStoreAndMonth(storeID uint, month, year string) ([]model.Attendance, error)
	GetByStoresAndDate(storeIDs []uint, workDate string) ([]model.Attendance, error)
	HardDelete(id uint) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(att *model.Attendance) error {
	return r.db.Create(att).Error
}

func (r *attendanceRepository) Update(att *model.Attendance) error {
	// Save writes every field, including clearing OpenUserKey back to NULL.
	return r.db.Save(att).Error
}

func (r *attendanceRepository) GetByID(id uint) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.First(&att, id).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) FindOpenByUserInDates(userID uint, dates []string) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.
		Where("user_id = ? AND work_date IN ? AND clock_out_at IS NULL", userID, dates).
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) FindOpenByUserStoreInDates(userID, storeID uint, dates []string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.
		Where("user_id = ? AND store_id = ? AND work_date IN ? AND clock_out_at IS NULL", userID, storeID, dates).
		Order("clock_in_at desc").
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// LatestOpenByUserStore ignores work_date entirely. It is the last-resort
// lookup at clock-out for night stores whose open record carries neither
// today's nor yesterday's date.
func (r *attendanceRepository) LatestOpenByUserStore(userID, storeID uint) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.
		Where("user_id = ? AND store_id = ? AND clock_out_at IS NULL", userID, storeID).
		Order("clock_in_at desc").
		First(&att).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetHistory(userID uint) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Where("user_id = ?", userID).Order("clock_in_at desc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByMonth(userID uint, month, year string) ([]model.Attendance, error) {
	var list []model.Attendance
	prefix := fmt.Sprintf("%s-%s-%%", year, month)
	err := r.db.
		Where("user_id = ? AND work_date LIKE ?", userID, prefix).
		Order("work_date asc").
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByStoreAndMonth(storeID uint, month, year string) ([]model.Attendance, error) {
	var list []model.Attendance
	prefix := fmt.Sprintf("%s-%s-%%", year, month)
	err := r.db.
		Where("store_id = ? AND work_date LIKE ?", storeID, prefix).
		Order("work_date asc, clock_in_at asc").
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByStoresAndDate(storeIDs []uint, workDate string) ([]model.Attendance, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}
	var list []model.Attendance
	err := r.db.
		Where("store_id IN ? AND work_date = ?", storeIDs, workDate).
		Find(&list).Error
	return list, err
}

// HardDelete bypasses the soft-delete so the cancelled record releases its
// OpenUserKey unique slot; a soft-deleted open row would keep blocking the
// user's next clock-in.
func (r *attendanceRepository) HardDelete(id uint) error {
	return r.db.Unscoped().Delete(&model.Attendance{}, id).Error
}
