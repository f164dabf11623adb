package codec

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// Expansion rehydrates every item from the catalog by id. Unknown ids
// (a code minted against a newer or modified catalog) fall back to a
// minimal stub carrying the wire name, cost, and stats, with empty
// description, restrictions, and categories.

func (c *Codec) expandWarband(compressed wireWarband) wb.Warband {
	units := make([]wb.Unit, len(compressed.Units))
	for i, u := range compressed.Units {
		units[i] = c.expandUnit(u)
	}
	return wb.Warband{
		ID:        c.idgen.Generate(),
		Name:      compressed.Name,
		FactionID: compressed.FactionID,
		Units:     units,
		TotalCost: compressed.TotalCost,
	}
}

func (c *Codec) expandUnit(compressed wireUnit) wb.Unit {
	weapons := make([]wb.Weapon, len(compressed.Weapons))
	for i, w := range compressed.Weapons {
		weapons[i] = c.expandWeapon(w)
	}
	armor := make([]wb.Armor, len(compressed.Armor))
	for i, a := range compressed.Armor {
		armor[i] = c.expandArmor(a)
	}
	equipment := make([]wb.Equipment, len(compressed.Equipment))
	for i, e := range compressed.Equipment {
		equipment[i] = c.expandEquipment(e)
	}

	return wb.Unit{
		ID:            c.idgen.Generate(),
		Name:          compressed.Name,
		FactionID:     compressed.FactionID,
		UnitType:      wb.UnitType(compressed.UnitType),
		BaseCost:      compressed.BaseCost,
		Competency:    compressed.Competency,
		Resilience:    compressed.Resilience,
		Willpower:     compressed.Willpower,
		Vigor:         compressed.Vigor,
		Wounds:        compressed.Wounds,
		Weapons:       weapons,
		Armor:         armor,
		Equipment:     equipment,
		Skills:        c.expandSkills(compressed.Skills),
		DefaultSkills: c.expandSkills(compressed.DefaultSkills),
		TotalCost:     compressed.TotalCost,
	}
}

func (c *Codec) expandWeapon(compressed wireWeapon) wb.Weapon {
	if full, ok := c.catalog.WeaponByID(compressed.ID); ok {
		return full
	}
	keywords := make([]wb.WeaponKeyword, len(compressed.KeywordIDs))
	for i, id := range compressed.KeywordIDs {
		if full, ok := c.catalog.WeaponKeywordByID(id); ok {
			keywords[i] = full
			continue
		}
		keywords[i] = wb.WeaponKeyword{ID: id}
	}
	return wb.Weapon{
		ID:             compressed.ID,
		Name:           compressed.Name,
		Cost:           compressed.Cost,
		CombatPower:    compressed.CombatPower,
		WeaponKeywords: keywords,
	}
}

func (c *Codec) expandArmor(compressed wireArmor) wb.Armor {
	if full, ok := c.catalog.ArmorByID(compressed.ID); ok {
		return full
	}
	return wb.Armor{
		ID:              compressed.ID,
		Name:            compressed.Name,
		Cost:            compressed.Cost,
		ArmorValue:      compressed.ArmorValue,
		MovementPenalty: compressed.MovementPenalty,
	}
}

func (c *Codec) expandEquipment(compressed wireItem) wb.Equipment {
	if full, ok := c.catalog.EquipmentByID(compressed.ID); ok {
		return full
	}
	return wb.Equipment{
		ID:   compressed.ID,
		Name: compressed.Name,
		Cost: compressed.Cost,
	}
}

func (c *Codec) expandSkills(compressed []wireItem) []wb.Skill {
	out := make([]wb.Skill, len(compressed))
	for i, item := range compressed {
		if full, ok := c.catalog.SkillByID(item.ID); ok {
			out[i] = full
			continue
		}
		out[i] = wb.Skill{ID: item.ID, Name: item.Name, Cost: item.Cost}
	}
	return out
}
