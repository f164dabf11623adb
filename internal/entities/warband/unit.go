package warband

// BaseMovement is the unmodified movement value shared by every unit.
const BaseMovement = 6

// Unit is one model in a warband: an archetype's base attributes plus the
// player's chosen attachments. DefaultSkills are archetype-intrinsic; they
// cost nothing, count against no slot, and cannot be removed.
type Unit struct {
	ID            string
	Name          string
	FactionID     string
	UnitType      UnitType
	BaseCost      int
	Competency    int
	Resilience    int
	Willpower     int
	Vigor         int
	Wounds        int
	Weapons       []Weapon
	Armor         []Armor
	Equipment     []Equipment
	Skills        []Skill
	DefaultSkills []Skill
	TotalCost     int
}

// MovementPenalty sums the movement penalties of the unit's armor.
// Penalties are zero or negative.
func (u *Unit) MovementPenalty() int {
	total := 0
	for _, a := range u.Armor {
		total += a.MovementPenalty
	}
	return total
}

// MovementValue is the unit's effective movement: base movement plus the
// (negative) armor penalty sum.
func (u *Unit) MovementValue() int {
	return BaseMovement + u.MovementPenalty()
}

// Clone returns a deep copy of the unit. Attachment slices are copied so
// the clone can be mutated by replacement without aliasing the original.
func (u *Unit) Clone() Unit {
	out := *u
	out.Weapons = append([]Weapon(nil), u.Weapons...)
	out.Armor = append([]Armor(nil), u.Armor...)
	out.Equipment = append([]Equipment(nil), u.Equipment...)
	out.Skills = append([]Skill(nil), u.Skills...)
	out.DefaultSkills = append([]Skill(nil), u.DefaultSkills...)
	return out
}
