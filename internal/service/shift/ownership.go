// Package shift resolves which shifts a staff member is responsible for
// once approved cover requests have moved shifts between staff.
package shift

import (
	"context"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/shift-payroll/internal/domain/integrity"
	"github.com/cmlabs-hris/shift-payroll/internal/domain/shift"
	"github.com/cmlabs-hris/shift-payroll/internal/pkg/daterange"
)

type OwnershipInput struct {
	StaffID string
	Window  daterange.Range
	// Assigned are the shifts whose raw assignee is StaffID.
	Assigned []shift.Shift
	// Covers are the cover requests where StaffID is the assignee of the
	// referenced shift or the covering staff.
	Covers []shift.CoverRequest
	// Shifts resolves cover request shift ids that are not in Assigned.
	// A missing id means the shift was deleted.
	Shifts map[string]shift.Shift
}

type EffectiveShift struct {
	Shift     shift.Shift
	CoveredIn bool
}

type Ownership struct {
	Shifts   []EffectiveShift
	Warnings []integrity.Warning
}

// ResolveOwnership computes the effective shift set of in.StaffID. The result
// is sorted by date, start time and id. Repeated application to the same
// input yields the same result.
func ResolveOwnership(ctx context.Context, in OwnershipInput) Ownership {
	var out Ownership

	approvedByShift := make(map[string][]shift.CoverRequest)
	for _, c := range in.Covers {
		if c.IsApproved() {
			approvedByShift[c.ShiftID] = append(approvedByShift[c.ShiftID], c)
		}
	}
	reported := make(map[string]bool)
	for _, c := range in.Covers {
		covers := approvedByShift[c.ShiftID]
		if len(covers) < 2 || reported[c.ShiftID] {
			continue
		}
		reported[c.ShiftID] = true
		out.Warnings = append(out.Warnings, integrity.Report(ctx, integrity.Warning{
			Code:     integrity.CodeDuplicateCoverRequest,
			StaffID:  in.StaffID,
			RecordID: c.ShiftID,
			Message:  fmt.Sprintf("shift has %d approved cover requests", len(covers)),
		}))
	}

	seen := make(map[string]bool)
	add := func(s shift.Shift, coveredIn bool) {
		if seen[s.ID] {
			return
		}
		seen[s.ID] = true
		out.Shifts = append(out.Shifts, EffectiveShift{Shift: s, CoveredIn: coveredIn})
	}

	for _, s := range in.Assigned {
		if !in.Window.Contains(s.Date) {
			continue
		}
		if covers := approvedByShift[s.ID]; len(covers) > 0 && winningCover(covers).CoveringStaffID != in.StaffID {
			continue
		}
		add(s, false)
	}

	for _, c := range in.Covers {
		if !c.IsApproved() || c.CoveringStaffID != in.StaffID {
			continue
		}
		if winningCover(approvedByShift[c.ShiftID]).ID != c.ID {
			continue
		}
		s, ok := lookupShift(in, c.ShiftID)
		if !ok {
			out.Warnings = append(out.Warnings, integrity.Report(ctx, integrity.Warning{
				Code:     integrity.CodeDanglingCoverRequest,
				StaffID:  in.StaffID,
				RecordID: c.ID,
				Message:  fmt.Sprintf("cover request references missing shift %s", c.ShiftID),
			}))
			continue
		}
		if !in.Window.Contains(s.Date) {
			continue
		}
		add(s, s.StaffID != in.StaffID)
	}

	SortEffective(out.Shifts)
	return out
}

// SortEffective orders shifts by date, then start time, then id.
func SortEffective(shifts []EffectiveShift) {
	sort.SliceStable(shifts, func(i, j int) bool {
		a, b := shifts[i].Shift, shifts[j].Shift
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if ca, cb := clock(a), clock(b); ca != cb {
			return ca < cb
		}
		return a.ID < b.ID
	})
}

func clock(s shift.Shift) int {
	h, m, sec := s.StartTime.Clock()
	return h*3600 + m*60 + sec
}

// winningCover picks the approved cover that decides ownership when a shift
// has more than one: the latest CreatedAt, then the larger id. covers must
// not be empty. A cover handing the shift to its own assignee keeps it there.
func winningCover(covers []shift.CoverRequest) shift.CoverRequest {
	winner := covers[0]
	for _, c := range covers[1:] {
		if c.CreatedAt.After(winner.CreatedAt) || (c.CreatedAt.Equal(winner.CreatedAt) && c.ID > winner.ID) {
			winner = c
		}
	}
	return winner
}

func lookupShift(in OwnershipInput, id string) (shift.Shift, bool) {
	if s, ok := in.Shifts[id]; ok {
		return s, true
	}
	for _, s := range in.Assigned {
		if s.ID == id {
			return s, true
		}
	}
	return shift.Shift{}, false
}
