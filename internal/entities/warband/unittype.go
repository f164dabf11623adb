package warband

// UnitType classifies a unit archetype. It drives item availability
// filtering and slot-limit derivation.
type UnitType string

// The closed set of unit archetypes.
const (
	UnitTypeLineTrooper     UnitType = "Line Trooper"
	UnitTypeShockTrooper    UnitType = "Shock Trooper"
	UnitTypeSkirmisher      UnitType = "Skirmisher"
	UnitTypeMarksmen        UnitType = "Marksmen"
	UnitTypeSupport         UnitType = "Support"
	UnitTypeGunner          UnitType = "Gunner"
	UnitTypeSummoner        UnitType = "Summoner"
	UnitTypeIronclad        UnitType = "Ironclad"
	UnitTypeEldritch        UnitType = "Eldritch"
	UnitTypeHallowed        UnitType = "Hallowed"
	UnitTypeOperative       UnitType = "Operative"
	UnitTypeMeleeSpecialist UnitType = "Melee Specialist"
)

// UnitTypes lists every unit type in display order.
func UnitTypes() []UnitType {
	return []UnitType{
		UnitTypeLineTrooper,
		UnitTypeShockTrooper,
		UnitTypeSkirmisher,
		UnitTypeMarksmen,
		UnitTypeSupport,
		UnitTypeGunner,
		UnitTypeSummoner,
		UnitTypeIronclad,
		UnitTypeEldritch,
		UnitTypeHallowed,
		UnitTypeOperative,
		UnitTypeMeleeSpecialist,
	}
}

// Valid reports whether t is one of the known unit types.
func (t UnitType) Valid() bool {
	switch t {
	case UnitTypeLineTrooper, UnitTypeShockTrooper, UnitTypeSkirmisher,
		UnitTypeMarksmen, UnitTypeSupport, UnitTypeGunner, UnitTypeSummoner,
		UnitTypeIronclad, UnitTypeEldritch, UnitTypeHallowed,
		UnitTypeOperative, UnitTypeMeleeSpecialist:
		return true
	}
	return false
}

// String returns the display name of the unit type.
func (t UnitType) String() string {
	return string(t)
}
