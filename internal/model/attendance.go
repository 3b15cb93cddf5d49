package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendanceRegular     = "regular"
	AttendanceRescheduled = "rescheduled"
	AttendanceEmergency   = "emergency"
)

// Attendance is one visit to a store. WorkDate is the calendar date the visit
// is attributed to, which on night shifts is not necessarily the date
// ClockInAt falls on. A record is "open" until ClockOutAt is set, and a user
// may hold at most one open record at a time across all stores.
type Attendance struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	StoreID  uint   `json:"store_id" gorm:"index;not null"`
	WorkDate string `json:"work_date" gorm:"index;size:10;not null"`

	ClockInAt   time.Time  `json:"clock_in_at"`
	ClockInLat  string     `json:"clock_in_latitude"` // stored as strings for DECIMAL compatibility
	ClockInLng  string     `json:"clock_in_longitude"`
	ClockOutAt  *time.Time `json:"clock_out_at"`
	ClockOutLat *string    `json:"clock_out_latitude"`
	ClockOutLng *string    `json:"clock_out_longitude"`

	SelfieURL      *string `json:"selfie_url"`
	AttendanceType string  `json:"attendance_type" gorm:"default:regular"` // regular/rescheduled/emergency

	// Schedule-change metadata, set when the visit deviates from the plan.
	ScheduledDate   *string `json:"scheduled_date"`
	ProblemReportID *uint   `json:"problem_report_id"`
	ChangeReason    *string `json:"change_reason"`

	// OpenUserKey mirrors UserID while the record is open and is cleared at
	// clock-out. The unique index is the storage-level guarantee that a user
	// holds at most one open session: the application guard is only the
	// fast-path, two concurrent clock-ins race past it, and MySQL unique
	// indexes ignore NULLs so closed records never collide.
	OpenUserKey *uint `json:"-" gorm:"uniqueIndex"`
}

func (a *Attendance) Open() bool {
	return a.ClockOutAt == nil
}
