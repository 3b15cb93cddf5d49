package usecase

import (
	"fmt"
	"strings"
	"time"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/checklist"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"

	"github.com/xuri/excelize/v2"
)

type ReportService struct {
	clock      timeutil.Clock
	companies  repository.CompanyRepository
	stores     repository.StoreRepository
	attendance repository.AttendanceRepository
	checklists repository.ChecklistRepository
	users      repository.UserRepository
}

func NewReportService(clock timeutil.Clock, companies repository.CompanyRepository, stores repository.StoreRepository, attendance repository.AttendanceRepository, checklists repository.ChecklistRepository, users repository.UserRepository) *ReportService {
	return &ReportService{
		clock:      clock,
		companies:  companies,
		stores:     stores,
		attendance: attendance,
		checklists: checklists,
		users:      users,
	}
}

// CompanyDailySummary counts how many of a company's stores due for
// management on a work date actually saw a visit.
type CompanyDailySummary struct {
	CompanyID      uint     `json:"company_id"`
	CompanyName    string   `json:"company_name"`
	ReportEmail    string   `json:"-"`
	WorkDate       string   `json:"work_date"`
	TotalStores    int      `json:"total_stores"`
	AttendedStores int      `json:"attended_stores"`
	Unmanaged      []string `json:"unmanaged_store_names"`
}

func (s *ReportService) DailySummary(workDate string) ([]CompanyDailySummary, error) {
	day, err := time.ParseInLocation(timeutil.DateLayout, workDate, timeutil.KST)
	if err != nil {
		return nil, apperror.New(apperror.KindValidation, "Invalid date, expected YYYY-MM-DD")
	}
	dayName := day.Weekday().String()[:3] // Mon, Tue, ...

	companies, err := s.companies.GetAll()
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load companies")
	}

	summaries := make([]CompanyDailySummary, 0, len(companies))
	for _, company := range companies {
		stores, err := s.stores.GetByCompany(company.ID)
		if err != nil {
			return nil, apperror.Storage(err, "Failed to load stores")
		}

		workDayStores := stores[:0]
		for _, store := range stores {
			if store.ManagedOn(dayName) {
				workDayStores = append(workDayStores, store)
			}
		}
		if len(workDayStores) == 0 {
			continue
		}

		ids := make([]uint, 0, len(workDayStores))
		for _, store := range workDayStores {
			ids = append(ids, store.ID)
		}
		atts, err := s.attendance.GetByStoresAndDate(ids, workDate)
		if err != nil {
			return nil, apperror.Storage(err, "Failed to load attendance")
		}
		attended := make(map[uint]bool, len(atts))
		for _, att := range atts {
			attended[att.StoreID] = true
		}

		var unmanaged []string
		for _, store := range workDayStores {
			if !attended[store.ID] {
				unmanaged = append(unmanaged, store.Name)
			}
		}

		summaries = append(summaries, CompanyDailySummary{
			CompanyID:      company.ID,
			CompanyName:    company.Name,
			ReportEmail:    company.ReportEmail,
			WorkDate:       workDate,
			TotalStores:    len(workDayStores),
			AttendedStores: len(attended),
			Unmanaged:      unmanaged,
		})
	}
	return summaries, nil
}

// FormatSummary renders a daily summary as the plain-text report body.
func FormatSummary(summaries []CompanyDailySummary) string {
	var b strings.Builder
	for _, sum := range summaries {
		fmt.Fprintf(&b, "[%s] %s: %d/%d stores managed\n",
			sum.WorkDate, sum.CompanyName, sum.AttendedStores, sum.TotalStores)
		if len(sum.Unmanaged) > 0 {
			fmt.Fprintf(&b, "  unmanaged: %s\n", strings.Join(sum.Unmanaged, ", "))
		}
	}
	return b.String()
}

// ExportMonthly builds an attendance workbook for one store and month, one
// row per visit with the checklist completion for that work date.
func (s *ReportService) ExportMonthly(storeID uint, month, year string) (*excelize.File, error) {
	if len(month) == 1 {
		month = "0" + month
	}
	atts, err := s.attendance.GetByStoreAndMonth(storeID, month, year)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load attendance")
	}

	userIDs := make([]uint, 0, len(atts))
	seen := make(map[uint]bool)
	for _, att := range atts {
		if !seen[att.UserID] {
			seen[att.UserID] = true
			userIDs = append(userIDs, att.UserID)
		}
	}
	users, err := s.users.GetByIDs(userIDs)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load users")
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	f := excelize.NewFile()
	sheet := "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to create sheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Work Date", "Staff", "Clock In", "Clock Out", "Type", "Checklist %"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}
	if headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		f.SetRowStyle(sheet, 1, 1, headerStyle)
	}

	for i, att := range atts {
		row := i + 2
		clockOut := ""
		if att.ClockOutAt != nil {
			clockOut = att.ClockOutAt.In(timeutil.KST).Format("15:04:05")
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), att.WorkDate)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), names[att.UserID])
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), att.ClockInAt.In(timeutil.KST).Format("15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), clockOut)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), att.AttendanceType)

		cls, err := s.checklists.FindByStoreAndDate(storeID, att.WorkDate)
		if err != nil {
			return nil, apperror.Storage(err, "Failed to load checklists")
		}
		progresses := make([]checklist.Progress, 0, len(cls))
		for _, cl := range cls {
			progresses = append(progresses, checklist.Score(cl.Items.Data(), checklist.StageNone))
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), checklist.Sum(progresses...).Percentage)
	}
	return f, nil
}
