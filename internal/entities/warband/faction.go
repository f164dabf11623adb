package warband

// Faction is a top-level army affiliation. Factions gate which archetype
// templates exist and carry cost-modifier tables; they never gate item
// availability directly.
type Faction struct {
	ID          string
	Name        string
	Description string
}

// FactionModifier holds a faction's category-based cost adjustments.
// Both maps are partial: a missing category contributes zero. At most one
// modifier exists per faction.
type FactionModifier struct {
	FactionID          string
	Name               string
	Description        string
	SkillModifiers     map[SkillCategory]int
	EquipmentModifiers map[EquipmentCategory]int
}
