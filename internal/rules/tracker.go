package rules

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// UnitState is one unit's in-game condition.
type UnitState struct {
	UnitID        string
	Name          string
	MaxVigor      int
	SpentVigor    int
	MaxWounds     int
	CurrentWounds int
}

// RemainingVigor is the vigor still spendable this turn.
func (s UnitState) RemainingVigor() int {
	if remaining := s.MaxVigor - s.SpentVigor; remaining > 0 {
		return remaining
	}
	return 0
}

// Tracker is the play-mode state of one warband: a turn counter plus
// per-unit vigor and wound pools. Mutators return a replacement tracker;
// an unknown unit id is a no-op.
type Tracker struct {
	WarbandID string
	Turn      int
	Units     map[string]UnitState
}

// NewTracker seeds turn 1 with every unit at full vigor and wounds.
func NewTracker(w wb.Warband) Tracker {
	units := make(map[string]UnitState, len(w.Units))
	for _, u := range w.Units {
		units[u.ID] = UnitState{
			UnitID:        u.ID,
			Name:          u.Name,
			MaxVigor:      u.Vigor,
			MaxWounds:     u.Wounds,
			CurrentWounds: u.Wounds,
		}
	}
	return Tracker{WarbandID: w.ID, Turn: 1, Units: units}
}

func (t Tracker) withUnit(s UnitState) Tracker {
	units := make(map[string]UnitState, len(t.Units))
	for id, u := range t.Units {
		units[id] = u
	}
	units[s.UnitID] = s
	t.Units = units
	return t
}

// SpendVigor marks vigor spent for the unit, clamped at the unit's pool.
// A negative amount refunds, clamped at zero spent.
func (t Tracker) SpendVigor(unitID string, amount int) Tracker {
	s, ok := t.Units[unitID]
	if !ok {
		return t
	}
	s.SpentVigor += amount
	if s.SpentVigor > s.MaxVigor {
		s.SpentVigor = s.MaxVigor
	}
	if s.SpentVigor < 0 {
		s.SpentVigor = 0
	}
	return t.withUnit(s)
}

// ChangeWounds adjusts the unit's current wounds by delta, clamped to
// [0, max].
func (t Tracker) ChangeWounds(unitID string, delta int) Tracker {
	s, ok := t.Units[unitID]
	if !ok {
		return t
	}
	s.CurrentWounds += delta
	if s.CurrentWounds > s.MaxWounds {
		s.CurrentWounds = s.MaxWounds
	}
	if s.CurrentWounds < 0 {
		s.CurrentWounds = 0
	}
	return t.withUnit(s)
}

// AdvanceTurn increments the counter and refreshes every unit's vigor.
// Wounds carry over.
func (t Tracker) AdvanceTurn() Tracker {
	units := make(map[string]UnitState, len(t.Units))
	for id, s := range t.Units {
		s.SpentVigor = 0
		units[id] = s
	}
	t.Turn++
	t.Units = units
	return t
}

// Reset returns the tracker to turn 1 with full vigor and wounds.
func (t Tracker) Reset() Tracker {
	units := make(map[string]UnitState, len(t.Units))
	for id, s := range t.Units {
		s.SpentVigor = 0
		s.CurrentWounds = s.MaxWounds
		units[id] = s
	}
	t.Turn = 1
	t.Units = units
	return t
}
