package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ItemKindCheck            = "check"
	ItemKindBeforePhoto      = "before_photo"
	ItemKindAfterPhoto       = "after_photo"
	ItemKindBeforeAfterPhoto = "before_after_photo"
)

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// ChecklistItem is a tagged variant keyed by Kind. It is validated at the
// data boundary so the scoring logic never sees a free-form type string.
type ChecklistItem struct {
	Area           string  `json:"area"`
	Kind           string  `json:"type"`
	Checked        bool    `json:"checked,omitempty"`
	Status         string  `json:"status,omitempty"` // good/bad, check items only
	Comment        string  `json:"comment,omitempty"`
	BeforePhotoURL *string `json:"before_photo_url,omitempty"`
	AfterPhotoURL  *string `json:"after_photo_url,omitempty"`
}

func (i ChecklistItem) Validate() error {
	switch i.Kind {
	case ItemKindCheck, ItemKindBeforePhoto, ItemKindAfterPhoto, ItemKindBeforeAfterPhoto:
		return nil
	default:
		return fmt.Errorf("unknown checklist item type %q", i.Kind)
	}
}

// Scorable reports whether the item counts toward progress. Items without an
// area label are template placeholders and are skipped entirely.
func (i ChecklistItem) Scorable() bool {
	return strings.TrimSpace(i.Area) != ""
}

type ChecklistItems []ChecklistItem

func (items ChecklistItems) Validate() error {
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	return nil
}

// Checklist is the work plan for one visit. Staff submissions replace the
// full item sequence; it becomes read-only once WorkDate has passed.
type Checklist struct {
	gorm.Model
	StoreID        uint                                `json:"store_id" gorm:"index;not null"`
	WorkDate       string                              `json:"work_date" gorm:"index;size:10;not null"`
	AssignedUserID *uint                               `json:"assigned_user_id" gorm:"index"`
	Items          datatypes.JSONType[ChecklistItems]  `json:"items"`
	ReviewStatus   string                              `json:"review_status" gorm:"default:pending"`
	ManagerComment *string                             `json:"manager_comment"`
	ReviewedBy     *uint                               `json:"reviewed_by"`
	ReviewedAt     *time.Time                          `json:"reviewed_at"`
	Note           *string                             `json:"note"`
	BeforePhotoURL *string                             `json:"before_photo_url"`
	AfterPhotoURL  *string                             `json:"after_photo_url"`
}
