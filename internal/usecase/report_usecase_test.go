package usecase

import (
	"strings"
	"testing"
	"time"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/model"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"

	"gorm.io/gorm"
)

func newReportService(db *gorm.DB, clock timeutil.Clock) *ReportService {
	return NewReportService(clock,
		repository.NewCompanyRepository(db),
		repository.NewStoreRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewChecklistRepository(db),
		repository.NewUserRepository(db))
}

func TestDailySummary(t *testing.T) {
	db := setupDB(t)

	company := model.Company{Name: "Hangang Retail", ReportEmail: "ops@hangang.example"}
	if err := db.Create(&company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}

	// 2025-06-10 is a Tuesday: the Mon/Wed/Fri store is not due that day.
	everyday := model.Store{CompanyID: company.ID, Name: "Everyday", WorkStartHour: 9, WorkEndHour: 18, ServiceActive: true}
	offday := model.Store{CompanyID: company.ID, Name: "Weekday Only", WorkStartHour: 9, WorkEndHour: 18, ManagementDays: "Mon,Wed,Fri", ServiceActive: true}
	missed := model.Store{CompanyID: company.ID, Name: "Missed", WorkStartHour: 9, WorkEndHour: 18, ServiceActive: true}
	for _, store := range []*model.Store{&everyday, &offday, &missed} {
		if err := db.Create(store).Error; err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}

	key := uint(9)
	att := model.Attendance{
		UserID:      9,
		StoreID:     everyday.ID,
		WorkDate:    "2025-06-10",
		ClockInAt:   time.Date(2025, 6, 10, 9, 5, 0, 0, timeutil.KST),
		OpenUserKey: &key,
	}
	if err := db.Create(&att).Error; err != nil {
		t.Fatalf("seed attendance: %v", err)
	}

	svc := newReportService(db, afternoon)
	summaries, err := svc.DailySummary("2025-06-10")
	if err != nil {
		t.Fatalf("daily summary: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	sum := summaries[0]
	if sum.TotalStores != 2 {
		t.Fatalf("total stores = %d, want 2 (Mon/Wed/Fri store excluded on a Tuesday)", sum.TotalStores)
	}
	if sum.AttendedStores != 1 {
		t.Fatalf("attended stores = %d, want 1", sum.AttendedStores)
	}
	if len(sum.Unmanaged) != 1 || sum.Unmanaged[0] != "Missed" {
		t.Fatalf("unmanaged = %v, want [Missed]", sum.Unmanaged)
	}

	body := FormatSummary(summaries)
	if !strings.Contains(body, "1/2 stores managed") || !strings.Contains(body, "Missed") {
		t.Fatalf("unexpected report body:\n%s", body)
	}
}

func TestDailySummaryRejectsBadDate(t *testing.T) {
	db := setupDB(t)
	svc := newReportService(db, afternoon)

	_, err := svc.DailySummary("10-06-2025")
	if kind := errKind(t, err); kind != apperror.KindValidation {
		t.Fatalf("kind = %s, want ValidationError", kind)
	}
}
