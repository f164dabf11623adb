package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// Armor is unrestricted by unit type; the single-slot cap is enforced by
// the rules package.
var armorList = []wb.Armor{
	{
		ID:   "light-armor",
		Name: "Light Armor",
		Cost: 3,
		Description: "Basic protective gear that provides minimal protection while " +
			"maintaining mobility.",
		ArmorValue:      1,
		MovementPenalty: 0,
		Categories:      []wb.EquipmentCategory{wb.EquipmentCategoryLightArmor},
	},
	{
		ID:   "medium-armor",
		Name: "Medium Armor",
		Cost: 6,
		Description: "Balanced protection offering good defense without severely " +
			"hampering movement.",
		ArmorValue:      2,
		MovementPenalty: -1,
		Categories:      []wb.EquipmentCategory{wb.EquipmentCategoryMediumArmor},
	},
	{
		ID:   "heavy-armor",
		Name: "Heavy Armor",
		Cost: 9,
		Description: "Maximum protection at the cost of mobility. Provides excellent " +
			"defense against most attacks.",
		ArmorValue:      3,
		MovementPenalty: -2,
		Categories:      []wb.EquipmentCategory{wb.EquipmentCategoryHeavyArmor},
	},
}
