package rules

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
)

// Slot caps. Weapon and armor caps are fixed; equipment and skill caps
// scale with the unit's statline.
const (
	WeaponSlots = 2
	ArmorSlots  = 1
)

// EquipmentSlots returns the unit's equipment cap.
func EquipmentSlots(u wb.Unit) int {
	return u.Resilience
}

// SkillSlots returns the unit's purchased-skill cap. Default skills do
// not count against it.
func SkillSlots(u wb.Unit) int {
	return u.Willpower
}

func slotFull(attribute string, cap int) error {
	return errors.ResourceExhaustedf("%s slots full", attribute).
		WithMeta("attribute", attribute).
		WithMeta("cap", cap)
}

// TryAttachWeapon returns a copy of the unit with the weapon attached, or
// a ResourceExhausted error when both weapon slots are taken. The input
// unit is never modified.
func (r *Ruleset) TryAttachWeapon(u wb.Unit, w wb.Weapon) (wb.Unit, error) {
	if len(u.Weapons) >= WeaponSlots {
		return u, slotFull("weapon", WeaponSlots)
	}
	u.Weapons = append(append([]wb.Weapon(nil), u.Weapons...), w)
	u.TotalCost = r.RecomputeTotalCost(u)
	return u, nil
}

// TryAttachArmor attaches armor, capped at a single piece.
func (r *Ruleset) TryAttachArmor(u wb.Unit, a wb.Armor) (wb.Unit, error) {
	if len(u.Armor) >= ArmorSlots {
		return u, slotFull("armor", ArmorSlots)
	}
	u.Armor = append(append([]wb.Armor(nil), u.Armor...), a)
	u.TotalCost = r.RecomputeTotalCost(u)
	return u, nil
}

// TryAttachEquipment attaches equipment, capped at the unit's Resilience.
func (r *Ruleset) TryAttachEquipment(u wb.Unit, e wb.Equipment) (wb.Unit, error) {
	if len(u.Equipment) >= EquipmentSlots(u) {
		return u, slotFull("equipment", EquipmentSlots(u))
	}
	u.Equipment = append(append([]wb.Equipment(nil), u.Equipment...), e)
	u.TotalCost = r.RecomputeTotalCost(u)
	return u, nil
}

// TryAttachSkill attaches a purchased skill, capped at the unit's
// Willpower.
func (r *Ruleset) TryAttachSkill(u wb.Unit, s wb.Skill) (wb.Unit, error) {
	if len(u.Skills) >= SkillSlots(u) {
		return u, slotFull("skill", SkillSlots(u))
	}
	u.Skills = append(append([]wb.Skill(nil), u.Skills...), s)
	u.TotalCost = r.RecomputeTotalCost(u)
	return u, nil
}

// DetachWeapon removes every attached weapon with the id. No-op when the
// id is not attached.
func (r *Ruleset) DetachWeapon(u wb.Unit, weaponID string) wb.Unit {
	kept := make([]wb.Weapon, 0, len(u.Weapons))
	for _, w := range u.Weapons {
		if w.ID != weaponID {
			kept = append(kept, w)
		}
	}
	u.Weapons = kept
	u.TotalCost = r.RecomputeTotalCost(u)
	return u
}

// DetachArmor removes attached armor with the id.
func (r *Ruleset) DetachArmor(u wb.Unit, armorID string) wb.Unit {
	kept := make([]wb.Armor, 0, len(u.Armor))
	for _, a := range u.Armor {
		if a.ID != armorID {
			kept = append(kept, a)
		}
	}
	u.Armor = kept
	u.TotalCost = r.RecomputeTotalCost(u)
	return u
}

// DetachEquipment removes attached equipment with the id.
func (r *Ruleset) DetachEquipment(u wb.Unit, equipmentID string) wb.Unit {
	kept := make([]wb.Equipment, 0, len(u.Equipment))
	for _, e := range u.Equipment {
		if e.ID != equipmentID {
			kept = append(kept, e)
		}
	}
	u.Equipment = kept
	u.TotalCost = r.RecomputeTotalCost(u)
	return u
}

// DetachSkill removes a purchased skill with the id. Default skills are
// untouchable.
func (r *Ruleset) DetachSkill(u wb.Unit, skillID string) wb.Unit {
	kept := make([]wb.Skill, 0, len(u.Skills))
	for _, s := range u.Skills {
		if s.ID != skillID {
			kept = append(kept, s)
		}
	}
	u.Skills = kept
	u.TotalCost = r.RecomputeTotalCost(u)
	return u
}

// WeaponAllowed reports whether the weapon may be listed for a unit of
// the given type in the given faction's warband. Unit-type whitelists
// always apply; the faction whitelist only when the ruleset enforces it.
func (r *Ruleset) WeaponAllowed(w wb.Weapon, unitType wb.UnitType, factionID string) bool {
	if !wb.AvailableTo(w, unitType) {
		return false
	}
	if !r.enforceWeaponFactionRestriction || len(w.FactionRestriction) == 0 {
		return true
	}
	for _, f := range w.FactionRestriction {
		if f.ID == factionID {
			return true
		}
	}
	return false
}
