package usecase

import (
	"errors"
	"strconv"
	"strings"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/model"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/workdate"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AttendanceService implements clock-in/clock-out. It resolves the work date
// from the store's shift config, then guards against duplicate open sessions
// before touching storage. The guard is check-then-act; the unique index on
// attendance.open_user_key closes the remaining race at insert time.
type AttendanceService struct {
	clock    timeutil.Clock
	repo     repository.AttendanceRepository
	stores   repository.StoreRepository
	validate *validator.Validate
}

func NewAttendanceService(clock timeutil.Clock, repo repository.AttendanceRepository, stores repository.StoreRepository) *AttendanceService {
	return &AttendanceService{
		clock:    clock,
		repo:     repo,
		stores:   stores,
		validate: validator.New(),
	}
}

type Location struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

type ClockInRequest struct {
	StoreID         uint     `json:"store_id" validate:"required"`
	Location        Location `json:"location"`
	SelfieURL       *string  `json:"selfie_url" validate:"omitempty,url"`
	AttendanceType  string   `json:"attendance_type" validate:"omitempty,oneof=regular rescheduled emergency"`
	ScheduledDate   *string  `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	ProblemReportID *uint    `json:"problem_report_id"`
	ChangeReason    *string  `json:"change_reason"`
}

type ClockOutRequest struct {
	StoreID  uint     `json:"store_id" validate:"required"`
	Location Location `json:"location"`
}

func (s *AttendanceService) ClockIn(userID uint, role string, req ClockInRequest) (*model.Attendance, error) {
	if role != model.RoleStaff {
		return nil, apperror.New(apperror.KindForbidden, "Only staff can clock in")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.New(apperror.KindValidation, "Invalid input: "+err.Error())
	}

	store, err := s.stores.GetActiveByID(req.StoreID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "Store not found or inactive")
	}
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load store")
	}

	resolved := workdate.Resolve(s.clock, store.IsNightShift, store.WorkStartHour, store.WorkEndHour)
	window := workdate.Window(s.clock, resolved)

	open, err := s.repo.FindOpenByUserInDates(userID, window)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to check open attendance")
	}
	for _, att := range open {
		if att.StoreID != req.StoreID {
			return nil, apperror.New(apperror.KindAlreadyClockedIn,
				"Please clock out of the store you are currently working at first.")
		}
	}
	if len(open) > 0 {
		return nil, apperror.New(apperror.KindAlreadyClockedIn,
			"You have already clocked in at this store.")
	}

	now := s.clock.Now().In(timeutil.KST)
	attendanceType := req.AttendanceType
	if attendanceType == "" {
		attendanceType = model.AttendanceRegular
	}
	att := &model.Attendance{
		UserID:          userID,
		StoreID:         req.StoreID,
		WorkDate:        resolved,
		ClockInAt:       now,
		ClockInLat:      formatCoord(*req.Location.Lat),
		ClockInLng:      formatCoord(*req.Location.Lng),
		SelfieURL:       req.SelfieURL,
		AttendanceType:  attendanceType,
		ScheduledDate:   req.ScheduledDate,
		ProblemReportID: req.ProblemReportID,
		ChangeReason:    req.ChangeReason,
		OpenUserKey:     &userID,
	}
	if err := s.repo.Create(att); err != nil {
		if isDuplicateKey(err) {
			// Two devices raced past the guard; the index kept one row.
			return nil, apperror.New(apperror.KindAlreadyClockedIn,
				"Please clock out of the store you are currently working at first.")
		}
		return nil, apperror.Storage(err, "Failed to create attendance")
	}
	return att, nil
}

func (s *AttendanceService) ClockOut(userID uint, role string, req ClockOutRequest) (*model.Attendance, error) {
	if !model.CanClockOut(role) {
		return nil, apperror.New(apperror.KindForbidden, "Only staff or subcontract users can clock out")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, apperror.New(apperror.KindValidation, "Invalid input: "+err.Error())
	}

	store, err := s.stores.GetActiveByID(req.StoreID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "Store not found or inactive")
	}
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load store")
	}

	resolved := workdate.Resolve(s.clock, store.IsNightShift, store.WorkStartHour, store.WorkEndHour)
	window := workdate.Window(s.clock, resolved)

	att, err := s.repo.FindOpenByUserStoreInDates(userID, req.StoreID, window)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to find attendance")
	}
	if att == nil {
		// Night stores can hold an open record dated outside the window.
		att, err = s.repo.LatestOpenByUserStore(userID, req.StoreID)
		if err != nil {
			return nil, apperror.Storage(err, "Failed to find attendance")
		}
	}
	if att == nil {
		return nil, apperror.New(apperror.KindNotClockedIn,
			"No open attendance found for this store. Please clock in first.")
	}

	now := s.clock.Now().In(timeutil.KST)
	lat := formatCoord(*req.Location.Lat)
	lng := formatCoord(*req.Location.Lng)
	att.ClockOutAt = &now
	att.ClockOutLat = &lat
	att.ClockOutLng = &lng
	att.OpenUserKey = nil
	if err := s.repo.Update(att); err != nil {
		return nil, apperror.Storage(err, "Failed to update attendance")
	}
	return att, nil
}

// TodayStatus returns the caller's open attendance in the today/yesterday
// window, or nil when they are not clocked in anywhere.
func (s *AttendanceService) TodayStatus(userID uint) (*model.Attendance, error) {
	window := workdate.Window(s.clock, timeutil.Today(s.clock))
	open, err := s.repo.FindOpenByUserInDates(userID, window)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to check attendance status")
	}
	if len(open) == 0 {
		return nil, nil
	}
	return &open[0], nil
}

func (s *AttendanceService) History(userID uint, month, year string) ([]model.Attendance, error) {
	var (
		list []model.Attendance
		err  error
	)
	if month != "" && year != "" {
		list, err = s.repo.GetByMonth(userID, month, year)
	} else {
		list, err = s.repo.GetHistory(userID)
	}
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load attendance history")
	}
	return list, nil
}

// Cancel removes a mistaken clock-in. Only owners/admins may call it, and
// only while the record is still open; a closed record is a finished visit
// and stays in the books.
func (s *AttendanceService) Cancel(role string, companyID *uint, attendanceID uint) error {
	if role != model.RoleBusinessOwner && role != model.RolePlatformAdmin {
		return apperror.New(apperror.KindForbidden, "Only business owners or admins can cancel attendance")
	}
	att, err := s.repo.GetByID(attendanceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.KindNotFound, "Attendance record not found")
	}
	if err != nil {
		return apperror.Storage(err, "Failed to load attendance")
	}
	if !att.Open() {
		return apperror.New(apperror.KindValidation, "A completed attendance cannot be cancelled")
	}
	if role == model.RoleBusinessOwner {
		if companyID == nil {
			return apperror.New(apperror.KindForbidden, "No company on the caller's account")
		}
		store, err := s.stores.GetActiveByID(att.StoreID)
		if err != nil || store.CompanyID != *companyID {
			return apperror.New(apperror.KindForbidden, "No permission to cancel attendance for this store")
		}
	}
	if err := s.repo.HardDelete(att.ID); err != nil {
		return apperror.Storage(err, "Failed to cancel attendance")
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers without error translation enabled.
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
