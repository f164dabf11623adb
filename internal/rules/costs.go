package rules

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// resolve applies a summed category modifier to a base cost. A faction
// with a modifier table floors the result at 1 even when no category
// matched; a faction without one leaves the base untouched.
func resolve(base int, modified bool, delta int) int {
	if !modified {
		return base
	}
	if cost := base + delta; cost > 1 {
		return cost
	}
	return 1
}

func (r *Ruleset) equipmentDelta(factionID string, categories []wb.EquipmentCategory) (int, bool) {
	mod, ok := r.catalog.ModifierForFaction(factionID)
	if !ok {
		return 0, false
	}
	delta := 0
	for _, c := range categories {
		delta += mod.EquipmentModifiers[c]
	}
	return delta, true
}

func (r *Ruleset) skillDelta(factionID string, categories []wb.SkillCategory) (int, bool) {
	mod, ok := r.catalog.ModifierForFaction(factionID)
	if !ok {
		return 0, false
	}
	delta := 0
	for _, c := range categories {
		delta += mod.SkillModifiers[c]
	}
	return delta, true
}

// WeaponCost returns the weapon's cost as priced for the faction.
func (r *Ruleset) WeaponCost(factionID string, w wb.Weapon) int {
	delta, ok := r.equipmentDelta(factionID, w.Categories)
	return resolve(w.Cost, ok, delta)
}

// ArmorCost returns the armor's cost as priced for the faction.
func (r *Ruleset) ArmorCost(factionID string, a wb.Armor) int {
	delta, ok := r.equipmentDelta(factionID, a.Categories)
	return resolve(a.Cost, ok, delta)
}

// EquipmentCost returns the item's cost as priced for the faction.
func (r *Ruleset) EquipmentCost(factionID string, e wb.Equipment) int {
	delta, ok := r.equipmentDelta(factionID, e.Categories)
	return resolve(e.Cost, ok, delta)
}

// SkillCost returns the skill's cost as priced for the faction.
func (r *Ruleset) SkillCost(factionID string, s wb.Skill) int {
	delta, ok := r.skillDelta(factionID, s.Categories)
	return resolve(s.Cost, ok, delta)
}

// RecomputeTotalCost reprices every attachment for the unit's faction and
// returns the unit's total. Default skills are part of the base cost.
func (r *Ruleset) RecomputeTotalCost(u wb.Unit) int {
	total := u.BaseCost
	for _, w := range u.Weapons {
		total += r.WeaponCost(u.FactionID, w)
	}
	for _, a := range u.Armor {
		total += r.ArmorCost(u.FactionID, a)
	}
	for _, e := range u.Equipment {
		total += r.EquipmentCost(u.FactionID, e)
	}
	for _, s := range u.Skills {
		total += r.SkillCost(u.FactionID, s)
	}
	return total
}
