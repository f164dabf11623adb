package warband

// Restricted is implemented by every attachable item that carries a
// unit-type whitelist.
type Restricted interface {
	Restrictions() []UnitType
}

// Restrictions returns the weapon's unit-type whitelist.
func (w Weapon) Restrictions() []UnitType { return w.UnitRestriction }

// Restrictions returns the armor's unit-type whitelist.
func (a Armor) Restrictions() []UnitType { return a.UnitRestriction }

// Restrictions returns the equipment's unit-type whitelist.
func (e Equipment) Restrictions() []UnitType { return e.UnitRestriction }

// Restrictions returns the skill's unit-type whitelist.
func (s Skill) Restrictions() []UnitType { return s.UnitRestriction }

// AvailableTo reports whether the item may be attached to a unit of the
// given type. An empty whitelist means the item is available to every type.
// Factions never affect availability here, only cost.
func AvailableTo(item Restricted, unitType UnitType) bool {
	restriction := item.Restrictions()
	if len(restriction) == 0 {
		return true
	}
	for _, t := range restriction {
		if t == unitType {
			return true
		}
	}
	return false
}

// FilterAvailable returns the items available to the given unit type,
// preserving order. The input slice is never mutated.
func FilterAvailable[T Restricted](items []T, unitType UnitType) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if AvailableTo(item, unitType) {
			out = append(out, item)
		}
	}
	return out
}
