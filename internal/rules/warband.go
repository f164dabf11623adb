package rules

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
)

// CommitUnit adds a finished unit to the warband and bumps the total by
// the unit's cost. The unit must belong to the warband's faction.
func CommitUnit(w wb.Warband, u wb.Unit) (wb.Warband, error) {
	if u.FactionID != w.FactionID {
		return w, errors.FailedPreconditionf(
			"unit %s belongs to faction %s, warband is %s", u.ID, u.FactionID, w.FactionID)
	}
	w.Units = append(append([]wb.Unit(nil), w.Units...), u.Clone())
	w.TotalCost += u.TotalCost
	return w, nil
}

// RemoveUnit drops the unit and subtracts its cost. No-op when the id is
// not in the roster.
func RemoveUnit(w wb.Warband, unitID string) wb.Warband {
	kept := make([]wb.Unit, 0, len(w.Units))
	for _, u := range w.Units {
		if u.ID == unitID {
			w.TotalCost -= u.TotalCost
			continue
		}
		kept = append(kept, u)
	}
	w.Units = kept
	return w
}

// ReplaceUnit swaps an existing roster unit for an edited copy with the
// same id, adjusting the warband total by the cost delta.
func ReplaceUnit(w wb.Warband, u wb.Unit) (wb.Warband, error) {
	units := append([]wb.Unit(nil), w.Units...)
	for i, existing := range units {
		if existing.ID != u.ID {
			continue
		}
		w.TotalCost += u.TotalCost - existing.TotalCost
		units[i] = u.Clone()
		w.Units = units
		return w, nil
	}
	return w, errors.FailedPreconditionf("unit %s is not in warband %s", u.ID, w.ID)
}
