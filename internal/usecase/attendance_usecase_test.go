package usecase

import (
	"errors"
	"testing"
	"time"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/model"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Store{},
		&model.StoreAssign{},
		&model.Attendance{},
		&model.Checklist{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedStore(t *testing.T, db *gorm.DB, name string, night bool, startHour, endHour int) *model.Store {
	t.Helper()
	store := &model.Store{
		CompanyID:     1,
		Name:          name,
		IsNightShift:  night,
		WorkStartHour: startHour,
		WorkEndHour:   endHour,
		ServiceActive: true,
	}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func newAttendanceService(db *gorm.DB, clock timeutil.Clock) *AttendanceService {
	return NewAttendanceService(clock,
		repository.NewAttendanceRepository(db),
		repository.NewStoreRepository(db))
}

func fptr(v float64) *float64 { return &v }

func clockInReq(storeID uint) ClockInRequest {
	return ClockInRequest{
		StoreID:  storeID,
		Location: Location{Lat: fptr(37.5665), Lng: fptr(126.9780)},
	}
}

func clockOutReq(storeID uint) ClockOutRequest {
	return ClockOutRequest{
		StoreID:  storeID,
		Location: Location{Lat: fptr(37.5665), Lng: fptr(126.9780)},
	}
}

func errKind(t *testing.T, err error) apperror.Kind {
	t.Helper()
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperror, got %v", err)
	}
	return appErr.Kind
}

// 2025-06-10 14:00 KST, a plain working afternoon.
var afternoon = timeutil.FixedClock{T: time.Date(2025, 6, 10, 14, 0, 0, 0, timeutil.KST)}

func TestClockInAssignsResolvedWorkDate(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Day Store", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	att, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID))
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if att.WorkDate != "2025-06-10" {
		t.Fatalf("work date = %s, want 2025-06-10", att.WorkDate)
	}
	if att.OpenUserKey == nil || *att.OpenUserKey != 1 {
		t.Fatalf("open record must hold the user's unique open key")
	}
	if att.AttendanceType != model.AttendanceRegular {
		t.Fatalf("attendance type = %s, want regular", att.AttendanceType)
	}
}

func TestClockInNightShiftEarlyMorningUsesYesterday(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Night Store", true, 22, 6)
	// 03:00 KST: the shift that started yesterday evening is still running.
	earlyMorning := timeutil.FixedClock{T: time.Date(2025, 6, 10, 3, 0, 0, 0, timeutil.KST)}
	svc := newAttendanceService(db, earlyMorning)

	att, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID))
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if att.WorkDate != "2025-06-09" {
		t.Fatalf("work date = %s, want 2025-06-09", att.WorkDate)
	}
}

func TestClockInRejectsNonStaff(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Day Store", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	_, err := svc.ClockIn(1, model.RoleBusinessOwner, clockInReq(store.ID))
	if kind := errKind(t, err); kind != apperror.KindForbidden {
		t.Fatalf("kind = %s, want ForbiddenError", kind)
	}
}

func TestClockInRequiresLocation(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Day Store", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	_, err := svc.ClockIn(1, model.RoleStaff, ClockInRequest{StoreID: store.ID})
	if kind := errKind(t, err); kind != apperror.KindValidation {
		t.Fatalf("kind = %s, want ValidationError", kind)
	}
}

func TestClockInRejectedWhileOpenAtAnotherStore(t *testing.T) {
	db := setupDB(t)
	storeA := seedStore(t, db, "Store A", false, 9, 18)
	storeB := seedStore(t, db, "Store B", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	if _, err := svc.ClockIn(1, model.RoleStaff, clockInReq(storeA.ID)); err != nil {
		t.Fatalf("first clock in: %v", err)
	}

	_, err := svc.ClockIn(1, model.RoleStaff, clockInReq(storeB.ID))
	if kind := errKind(t, err); kind != apperror.KindAlreadyClockedIn {
		t.Fatalf("kind = %s, want AlreadyClockedIn", kind)
	}
}

func TestClockInRejectedAsDuplicateAtSameStore(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Store A", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	if _, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID)); err != nil {
		t.Fatalf("first clock in: %v", err)
	}

	_, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID))
	if kind := errKind(t, err); kind != apperror.KindAlreadyClockedIn {
		t.Fatalf("kind = %s, want AlreadyClockedIn", kind)
	}
}

func TestClockInSeesYesterdaysOpenNightSession(t *testing.T) {
	db := setupDB(t)
	storeA := seedStore(t, db, "Night Store", true, 22, 6)
	storeB := seedStore(t, db, "Day Store", false, 9, 18)

	// Open record from yesterday's night session, never clocked out.
	key := uint(1)
	open := model.Attendance{
		UserID:      1,
		StoreID:     storeA.ID,
		WorkDate:    "2025-06-09",
		ClockInAt:   time.Date(2025, 6, 9, 22, 5, 0, 0, timeutil.KST),
		OpenUserKey: &key,
	}
	if err := db.Create(&open).Error; err != nil {
		t.Fatalf("seed open attendance: %v", err)
	}

	svc := newAttendanceService(db, afternoon)

	// Same store: duplicate.
	_, err := svc.ClockIn(1, model.RoleStaff, clockInReq(storeA.ID))
	if kind := errKind(t, err); kind != apperror.KindAlreadyClockedIn {
		t.Fatalf("same store kind = %s, want AlreadyClockedIn", kind)
	}

	// Different store: must not be silently allowed either.
	_, err = svc.ClockIn(1, model.RoleStaff, clockInReq(storeB.ID))
	if kind := errKind(t, err); kind != apperror.KindAlreadyClockedIn {
		t.Fatalf("other store kind = %s, want AlreadyClockedIn", kind)
	}
}

func TestClockOutThenClockInAgainSucceeds(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Store A", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	if _, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID)); err != nil {
		t.Fatalf("clock in: %v", err)
	}
	out, err := svc.ClockOut(1, model.RoleStaff, clockOutReq(store.ID))
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if out.ClockOutAt == nil {
		t.Fatalf("clock out time not set")
	}
	if out.OpenUserKey != nil {
		t.Fatalf("open key must be released at clock out")
	}

	// No false conflict once the prior record is closed.
	if _, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID)); err != nil {
		t.Fatalf("second clock in after clock out: %v", err)
	}
}

func TestClockOutWithoutOpenRecord(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Store A", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	_, err := svc.ClockOut(1, model.RoleStaff, clockOutReq(store.ID))
	if kind := errKind(t, err); kind != apperror.KindNotClockedIn {
		t.Fatalf("kind = %s, want NotClockedIn", kind)
	}
}

func TestClockOutFallsBackToOpenRecordOutsideWindow(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Night Store", true, 22, 6)

	// Open record whose work date is neither today nor yesterday.
	key := uint(1)
	stale := model.Attendance{
		UserID:      1,
		StoreID:     store.ID,
		WorkDate:    "2025-06-07",
		ClockInAt:   time.Date(2025, 6, 7, 22, 0, 0, 0, timeutil.KST),
		OpenUserKey: &key,
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("seed stale attendance: %v", err)
	}

	svc := newAttendanceService(db, afternoon)
	out, err := svc.ClockOut(1, model.RoleStaff, clockOutReq(store.ID))
	if err != nil {
		t.Fatalf("clock out: %v", err)
	}
	if out.ID != stale.ID {
		t.Fatalf("clocked out record %d, want the stale open record %d", out.ID, stale.ID)
	}
}

func TestUniqueOpenKeyClosesGuardRace(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Store A", false, 9, 18)

	// An open record dated outside the guard's search window: the fast-path
	// misses it, leaving only the unique index between us and a double
	// session.
	key := uint(1)
	hidden := model.Attendance{
		UserID:      1,
		StoreID:     store.ID,
		WorkDate:    "2025-05-01",
		ClockInAt:   time.Date(2025, 5, 1, 9, 0, 0, 0, timeutil.KST),
		OpenUserKey: &key,
	}
	if err := db.Create(&hidden).Error; err != nil {
		t.Fatalf("seed hidden open attendance: %v", err)
	}

	svc := newAttendanceService(db, afternoon)
	_, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID))
	if kind := errKind(t, err); kind != apperror.KindAlreadyClockedIn {
		t.Fatalf("kind = %s, want AlreadyClockedIn from the unique index", kind)
	}
}

func TestCancelAttendance(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Store A", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	att, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID))
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}

	companyID := uint(1)
	wrongCompany := uint(2)

	if err := svc.Cancel(model.RoleStaff, &companyID, att.ID); errKind(t, err) != apperror.KindForbidden {
		t.Fatalf("staff must not cancel attendance")
	}
	if err := svc.Cancel(model.RoleBusinessOwner, &wrongCompany, att.ID); errKind(t, err) != apperror.KindForbidden {
		t.Fatalf("owner of another company must not cancel attendance")
	}
	if err := svc.Cancel(model.RoleBusinessOwner, &companyID, att.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// The released key lets the user clock in again.
	if _, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID)); err != nil {
		t.Fatalf("clock in after cancel: %v", err)
	}
}

func TestCancelRefusesClosedRecords(t *testing.T) {
	db := setupDB(t)
	store := seedStore(t, db, "Store A", false, 9, 18)
	svc := newAttendanceService(db, afternoon)

	att, err := svc.ClockIn(1, model.RoleStaff, clockInReq(store.ID))
	if err != nil {
		t.Fatalf("clock in: %v", err)
	}
	if _, err := svc.ClockOut(1, model.RoleStaff, clockOutReq(store.ID)); err != nil {
		t.Fatalf("clock out: %v", err)
	}

	companyID := uint(1)
	err = svc.Cancel(model.RoleBusinessOwner, &companyID, att.ID)
	if kind := errKind(t, err); kind != apperror.KindValidation {
		t.Fatalf("kind = %s, want ValidationError for completed attendance", kind)
	}
}
