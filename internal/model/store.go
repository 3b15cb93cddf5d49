package model

import (
	"strings"

	"gorm.io/gorm"
)

type Company struct {
	gorm.Model
	Name        string `json:"name"`
	OwnerID     *uint  `json:"owner_id"`
	ReportEmail string `json:"report_email"`
}

// Store carries the shift configuration the attendance core reads. A night
// shift store's session is expected to span across midnight: WorkStartHour in
// the evening, WorkEndHour the following morning.
type Store struct {
	gorm.Model
	CompanyID      uint   `json:"company_id" gorm:"index"`
	Name           string `json:"name"`
	IsNightShift   bool   `json:"is_night_shift" gorm:"default:false"`
	WorkStartHour  int    `json:"work_start_hour" gorm:"default:9"`
	WorkEndHour    int    `json:"work_end_hour" gorm:"default:18"`
	ManagementDays string `json:"management_days"` // comma list of weekday names, e.g. "Mon,Wed,Fri"
	ServiceActive  bool   `json:"service_active" gorm:"default:true"`
}

// ManagedOn reports whether dayName (short weekday name) is a management day.
// An empty list means the store is managed every day (legacy stores).
func (s *Store) ManagedOn(dayName string) bool {
	days := strings.ReplaceAll(s.ManagementDays, " ", "")
	if days == "" {
		return true
	}
	for _, d := range strings.Split(days, ",") {
		if d == dayName {
			return true
		}
	}
	return false
}

// StoreAssign links a staff member to the stores they service.
type StoreAssign struct {
	gorm.Model
	UserID  uint `json:"user_id" gorm:"index"`
	StoreID uint `json:"store_id" gorm:"index"`
}
