package usecase

import (
	"errors"
	"strings"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/checklist"
	"storecare-backend/internal/model"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/workdate"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChecklistService struct {
	clock      timeutil.Clock
	checklists repository.ChecklistRepository
	attendance repository.AttendanceRepository
	stores     repository.StoreRepository
}

func NewChecklistService(clock timeutil.Clock, checklists repository.ChecklistRepository, attendance repository.AttendanceRepository, stores repository.StoreRepository) *ChecklistService {
	return &ChecklistService{
		clock:      clock,
		checklists: checklists,
		attendance: attendance,
		stores:     stores,
	}
}

type ChecklistSubmitRequest struct {
	Items          model.ChecklistItems `json:"items"`
	BeforePhotoURL *string              `json:"before_photo_url"`
	AfterPhotoURL  *string              `json:"after_photo_url"`
	Note           *string              `json:"note"`
}

// Submit replaces the checklist's full item sequence with the staff
// member's submission and puts it back in the review queue.
func (s *ChecklistService) Submit(userID uint, checklistID uint, req ChecklistSubmitRequest) (*model.Checklist, error) {
	if len(req.Items) == 0 {
		return nil, apperror.New(apperror.KindValidation, "items are required")
	}
	if err := req.Items.Validate(); err != nil {
		return nil, apperror.New(apperror.KindValidation, err.Error())
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.Area) == "" {
			return nil, apperror.New(apperror.KindValidation, "every submitted item needs an area label")
		}
	}

	cl, err := s.checklists.GetByID(checklistID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "Checklist not found")
	}
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load checklist")
	}

	assigned := cl.AssignedUserID != nil && *cl.AssignedUserID == userID
	if !assigned && cl.AssignedUserID == nil {
		// Unassigned checklists fall back to the store assignment.
		assigned, err = s.stores.IsAssigned(userID, cl.StoreID)
		if err != nil {
			return nil, apperror.Storage(err, "Failed to check store assignment")
		}
	}
	if !assigned {
		return nil, apperror.New(apperror.KindForbidden, "Only the assigned staff can complete this checklist")
	}

	// Read-only once the work date has passed: staff work checklists on the
	// day they clocked in for, never retroactively.
	if cl.WorkDate != timeutil.Today(s.clock) {
		return nil, apperror.New(apperror.KindForbidden, "Checklists can only be completed on their work date")
	}

	cl.Items = datatypes.NewJSONType(req.Items)
	cl.BeforePhotoURL = req.BeforePhotoURL
	cl.AfterPhotoURL = req.AfterPhotoURL
	cl.Note = req.Note
	cl.ReviewStatus = model.ReviewPending
	if err := s.checklists.Update(cl); err != nil {
		return nil, apperror.Storage(err, "Failed to update checklist")
	}
	return cl, nil
}

// StoreProgress is one dashboard row: aggregated completion for the caller's
// checklists at a store they are currently clocked in at.
type StoreProgress struct {
	StoreID    uint               `json:"store_id"`
	WorkDate   string             `json:"work_date"`
	Progress   checklist.Progress `json:"progress"`
	Incomplete int                `json:"incomplete_checklists"`
}

// ProgressByStore scores the caller's checklists for every store they hold an
// open attendance at. Aggregation sums completed/total across checklists
// before computing one percentage.
func (s *ChecklistService) ProgressByStore(userID uint) ([]StoreProgress, error) {
	window := workdate.Window(s.clock, timeutil.Today(s.clock))
	open, err := s.attendance.FindOpenByUserInDates(userID, window)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load open attendance")
	}

	results := make([]StoreProgress, 0, len(open))
	for _, att := range open {
		cls, err := s.checklists.FindByAssignee(userID, att.StoreID, att.WorkDate)
		if err != nil {
			return nil, apperror.Storage(err, "Failed to load checklists")
		}
		progresses := make([]checklist.Progress, 0, len(cls))
		incomplete := 0
		for _, cl := range cls {
			p := checklist.Score(cl.Items.Data(), checklist.StageNone)
			if p.Total > 0 && p.Percentage < 100 {
				incomplete++
			}
			progresses = append(progresses, p)
		}
		results = append(results, StoreProgress{
			StoreID:    att.StoreID,
			WorkDate:   att.WorkDate,
			Progress:   checklist.Sum(progresses...),
			Incomplete: incomplete,
		})
	}
	return results, nil
}

func (s *ChecklistService) ForStore(storeID uint, workDate string) ([]model.Checklist, error) {
	list, err := s.checklists.FindByStoreAndDate(storeID, workDate)
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load checklists")
	}
	return list, nil
}

// Review approves or rejects a submitted checklist. Approval is gated on full
// completion: a checklist below 100% cannot be marked reviewed.
func (s *ChecklistService) Review(reviewerID uint, role string, checklistID uint, approve bool, comment *string) (*model.Checklist, error) {
	switch role {
	case model.RoleBusinessOwner, model.RoleStoreManager, model.RolePlatformAdmin:
	default:
		return nil, apperror.New(apperror.KindForbidden, "Only managers can review checklists")
	}

	cl, err := s.checklists.GetByID(checklistID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.KindNotFound, "Checklist not found")
	}
	if err != nil {
		return nil, apperror.Storage(err, "Failed to load checklist")
	}

	if approve && !checklist.FullyCompleted(cl.Items.Data()) {
		return nil, apperror.New(apperror.KindValidation, "A checklist below 100% completion cannot be approved")
	}

	now := s.clock.Now().In(timeutil.KST)
	if approve {
		cl.ReviewStatus = model.ReviewApproved
	} else {
		cl.ReviewStatus = model.ReviewRejected
	}
	cl.ManagerComment = comment
	cl.ReviewedBy = &reviewerID
	cl.ReviewedAt = &now
	if err := s.checklists.Update(cl); err != nil {
		return nil, apperror.Storage(err, "Failed to update checklist")
	}
	return cl, nil
}
