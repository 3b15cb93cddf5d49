package scheduler

import (
	"fmt"
	"log"

	"storecare-backend/internal/notifier"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/usecase"

	"github.com/robfig/cron/v3"
)

// DailyReporter runs the attendance summary on the original cadence: 06:00
// KST covers night stores (their work_end_hour has passed, so yesterday's
// work date is final) and 13:00 KST is the midday sweep over today's regular
// stores.
type DailyReporter struct {
	cron    *cron.Cron
	reports *usecase.ReportService
	mailer  *notifier.Mailer
	clock   timeutil.Clock
}

func NewDailyReporter(reports *usecase.ReportService, mailer *notifier.Mailer, clock timeutil.Clock) *DailyReporter {
	return &DailyReporter{
		cron:    cron.New(cron.WithLocation(timeutil.KST)),
		reports: reports,
		mailer:  mailer,
		clock:   clock,
	}
}

func (d *DailyReporter) Start() error {
	if _, err := d.cron.AddFunc("0 6 * * *", func() {
		d.run(timeutil.Yesterday(d.clock))
	}); err != nil {
		return fmt.Errorf("scheduling morning report: %w", err)
	}
	if _, err := d.cron.AddFunc("0 13 * * *", func() {
		d.run(timeutil.Today(d.clock))
	}); err != nil {
		return fmt.Errorf("scheduling midday report: %w", err)
	}
	d.cron.Start()
	log.Println("Daily attendance reports scheduled for 06:00 and 13:00 KST")
	return nil
}

func (d *DailyReporter) Stop() {
	d.cron.Stop()
}

func (d *DailyReporter) run(workDate string) {
	summaries, err := d.reports.DailySummary(workDate)
	if err != nil {
		log.Printf("daily report for %s failed: %v", workDate, err)
		return
	}
	if len(summaries) == 0 {
		return
	}

	for _, sum := range summaries {
		body := usecase.FormatSummary([]usecase.CompanyDailySummary{sum})
		if !d.mailer.Enabled() || sum.ReportEmail == "" {
			log.Printf("daily attendance report:\n%s", body)
			continue
		}
		subject := fmt.Sprintf("Attendance report %s — %s", sum.WorkDate, sum.CompanyName)
		if err := d.mailer.Send([]string{sum.ReportEmail}, subject, body); err != nil {
			log.Printf("sending report to %s failed: %v", sum.ReportEmail, err)
		}
	}
}
