package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// Faction ids, shared by the modifier tables and templates.
const (
	FactionChurchOfTheMartyr = "church-of-the-martyr"
	FactionXiuhcoatl         = "xiuhcoatl"
	FactionIronPact          = "iron-pact"
	FactionFreeCompanies     = "free-companies"
)

var factions = []wb.Faction{
	{
		ID:   FactionChurchOfTheMartyr,
		Name: "Church of the Martyr",
		Description: "Zealous religious warriors devoted to their faith, combining religious " +
			"fervor with martial skill and divine protection.",
	},
	{
		ID:   FactionXiuhcoatl,
		Name: "Xiuhcoatl",
		Description: "Ancient ritualistic cult that employs blood sacrifice and eldritch " +
			"summoning to call forth otherworldly entities. Their forces combine expendable " +
			"cultists with powerful ritualists and summoners who can transform the " +
			"battlefield through mystical powers.",
	},
}

// Modifier tables exist for two factions that are not playable yet; the
// cost resolver treats them like any other, so they ship with the catalog.
var factionModifiers = []wb.FactionModifier{
	{
		FactionID: FactionChurchOfTheMartyr,
		Name:      "Church of the Martyr",
		Description: "Favors heavy armor, defensive tactics, and anti-eldritch warfare " +
			"while shunning stealth and subterfuge.",
		SkillModifiers: map[wb.SkillCategory]int{
			wb.SkillCategoryStealth:   3,
			wb.SkillCategoryDefensive: -2,
			wb.SkillCategoryFear:      -1,
			wb.SkillCategoryMorale:    -2,
			wb.SkillCategoryRitual:    5,
		},
		EquipmentModifiers: map[wb.EquipmentCategory]int{
			wb.EquipmentCategoryHeavyArmor:  -3,
			wb.EquipmentCategoryMediumArmor: -1,
			wb.EquipmentCategoryStealthGear: 4,
			wb.EquipmentCategoryAntiArmor:   -1,
			wb.EquipmentCategoryRitualGear:  6,
			wb.EquipmentCategoryMeleeWeapon: -1,
		},
	},
	{
		FactionID: FactionXiuhcoatl,
		Name:      "Xiuhcoatl",
		Description: "Masters of ritual magic and blood sacrifice, favoring eldritch powers " +
			"while struggling with conventional armor.",
		SkillModifiers: map[wb.SkillCategory]int{
			wb.SkillCategoryRitual:    -3,
			wb.SkillCategoryFear:      -2,
			wb.SkillCategoryStealth:   -1,
			wb.SkillCategoryDefensive: 2,
			wb.SkillCategoryMedical:   3,
		},
		EquipmentModifiers: map[wb.EquipmentCategory]int{
			wb.EquipmentCategoryRitualGear:  -4,
			wb.EquipmentCategoryHeavyArmor:  3,
			wb.EquipmentCategoryMediumArmor: 1,
			wb.EquipmentCategoryMedical:     4,
			wb.EquipmentCategoryMeleeWeapon: -2,
			wb.EquipmentCategoryCloseCombat: -1,
		},
	},
	{
		FactionID: FactionIronPact,
		Name:      "Iron Pact",
		Description: "Industrial might and mechanized warfare specialists, favoring heavy " +
			"weapons and armor.",
		SkillModifiers: map[wb.SkillCategory]int{
			wb.SkillCategoryStealth:   2,
			wb.SkillCategoryDefensive: -1,
			wb.SkillCategorySupport:   -2,
			wb.SkillCategoryFear:      1,
		},
		EquipmentModifiers: map[wb.EquipmentCategory]int{
			wb.EquipmentCategoryHeavyWeapon: -3,
			wb.EquipmentCategoryHeavyArmor:  -2,
			wb.EquipmentCategoryMediumArmor: -1,
			wb.EquipmentCategorySupportGear: -2,
			wb.EquipmentCategoryAntiArmor:   -2,
			wb.EquipmentCategoryStealthGear: 3,
			wb.EquipmentCategoryRitualGear:  4,
		},
	},
	{
		FactionID: FactionFreeCompanies,
		Name:      "Free Companies",
		Description: "Versatile mercenaries with balanced costs but specializing in mobility " +
			"and adaptability.",
		SkillModifiers: map[wb.SkillCategory]int{
			wb.SkillCategoryMovement:     -2,
			wb.SkillCategoryCoordination: -1,
			wb.SkillCategorySupport:      -1,
			wb.SkillCategoryStealth:      -1,
		},
		EquipmentModifiers: map[wb.EquipmentCategory]int{
			wb.EquipmentCategoryLightArmor:  -2,
			wb.EquipmentCategoryStealthGear: -1,
			wb.EquipmentCategorySupportGear: -1,
			wb.EquipmentCategoryHeavyArmor:  1,
			wb.EquipmentCategoryHeavyWeapon: 2,
		},
	},
}
