package warband

// NOTE: These are data-only structs. Faction pricing and slot rules live in
// internal/rules; the catalog owns the canonical instances.

// WeaponKeyword is a named rule modifier attached to a weapon. Cost is the
// value the weapon's price was authored from; it is not re-summed at runtime.
type WeaponKeyword struct {
	ID          string
	Name        string
	Description string
	Cost        int
}

// Weapon is an attachable weapon definition.
// An empty UnitRestriction means the weapon is usable by every unit type;
// a non-empty one is a whitelist. FactionRestriction follows the same
// convention but is informational unless the ruleset opts into enforcing it.
type Weapon struct {
	ID                 string
	Name               string
	Cost               int
	Description        string
	CombatPower        int
	WeaponKeywords     []WeaponKeyword
	UnitRestriction    []UnitType
	FactionRestriction []Faction
	Categories         []EquipmentCategory
}

// Armor is an attachable armor definition. MovementPenalty is zero or
// negative.
type Armor struct {
	ID              string
	Name            string
	Cost            int
	Description     string
	ArmorValue      int
	MovementPenalty int
	UnitRestriction []UnitType
	Categories      []EquipmentCategory
}

// Equipment is an attachable gear definition.
type Equipment struct {
	ID              string
	Name            string
	Cost            int
	Description     string
	UnitRestriction []UnitType
	Categories      []EquipmentCategory
}

// Skill is an attachable skill definition. Categories feed faction cost
// modifiers only.
type Skill struct {
	ID              string
	Name            string
	Cost            int
	Description     string
	UnitRestriction []UnitType
	Categories      []SkillCategory
}
