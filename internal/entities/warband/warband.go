// Package warband implements the data model for warbands, units, and the
// catalog items that attach to them.
package warband

// Warband is a player's complete roster for one faction. Every unit in it
// shares the warband's FactionID, and TotalCost is always the sum of the
// units' total costs.
type Warband struct {
	ID        string
	Name      string
	FactionID string
	Units     []Unit
	TotalCost int
}

// UnitByID returns a pointer to the unit with the given id, or nil.
func (w *Warband) UnitByID(id string) *Unit {
	for i := range w.Units {
		if w.Units[i].ID == id {
			return &w.Units[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the warband.
func (w *Warband) Clone() Warband {
	out := *w
	out.Units = make([]Unit, len(w.Units))
	for i := range w.Units {
		out.Units[i] = w.Units[i].Clone()
	}
	return out
}
