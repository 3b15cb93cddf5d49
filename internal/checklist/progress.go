// Package checklist scores a checklist's items against their required
// evidence. The calculator is pure: call it identically for one checklist or
// across many, and aggregate by summing counts, never by averaging
// percentages.
package checklist

import (
	"math"

	"storecare-backend/internal/model"
)

// Stage optionally restricts scoring to one half of a two-visit
// (before/after) workflow.
type Stage string

const (
	StageNone   Stage = ""
	StageBefore Stage = "before"
	StageAfter  Stage = "after"
)

type Progress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

// Score walks the item sequence and counts required vs. present evidence.
//
// Check items always count once. Photo items count on the stages they belong
// to: a before_photo item is invisible at the "after" stage and vice versa.
// A before_after_photo item is two requirements when no stage filter is
// applied, and one requirement (its matching side) per stage.
func Score(items model.ChecklistItems, stage Stage) Progress {
	var p Progress
	for _, item := range items {
		if !item.Scorable() {
			continue
		}
		switch item.Kind {
		case model.ItemKindCheck:
			p.Total++
			if item.Checked {
				p.Completed++
			}
		case model.ItemKindBeforePhoto:
			if stage == StageAfter {
				continue
			}
			p.Total++
			if hasURL(item.BeforePhotoURL) {
				p.Completed++
			}
		case model.ItemKindAfterPhoto:
			if stage == StageBefore {
				continue
			}
			p.Total++
			if hasURL(item.AfterPhotoURL) {
				p.Completed++
			}
		case model.ItemKindBeforeAfterPhoto:
			if stage != StageAfter {
				p.Total++
				if hasURL(item.BeforePhotoURL) {
					p.Completed++
				}
			}
			if stage != StageBefore {
				p.Total++
				if hasURL(item.AfterPhotoURL) {
					p.Completed++
				}
			}
		}
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// Sum aggregates progress across checklists: counts are summed and one
// percentage is computed over the combined totals.
func Sum(progresses ...Progress) Progress {
	var out Progress
	for _, p := range progresses {
		out.Total += p.Total
		out.Completed += p.Completed
	}
	out.Percentage = percentage(out.Completed, out.Total)
	return out
}

// FullyCompleted reports whether every scorable requirement is met. A
// checklist with zero scorable items is never fully completed, so empty
// templates cannot pass review.
func FullyCompleted(items model.ChecklistItems) bool {
	p := Score(items, StageNone)
	return p.Total > 0 && p.Percentage == 100
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func hasURL(u *string) bool {
	return u != nil && *u != ""
}
