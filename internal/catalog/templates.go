package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

func sk(ids ...string) []wb.Skill {
	out := make([]wb.Skill, len(ids))
	for i, id := range ids {
		found := false
		for _, s := range skills {
			if s.ID == id {
				out[i] = s
				found = true
				break
			}
		}
		if !found {
			panic("catalog: unknown skill " + id)
		}
	}
	return out
}

// Archetype templates, keyed (faction, unit type). A build session clones
// one of these with a fresh id; BaseCost covers the statline and the
// default skills, so TotalCost starts equal to it.
var unitTemplates = []wb.Unit{
	// Church of the Martyr.
	{
		ID:            "church-line-trooper",
		Name:          "Martyr Line Trooper",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeLineTrooper,
		BaseCost:      10,
		Competency:    3,
		Resilience:    3,
		Willpower:     3,
		Vigor:         2,
		Wounds:        2,
		DefaultSkills: sk("personnel"),
		TotalCost:     10,
	},
	{
		ID:            "church-shock-trooper",
		Name:          "Penitent Shock Trooper",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeShockTrooper,
		BaseCost:      14,
		Competency:    4,
		Resilience:    4,
		Willpower:     3,
		Vigor:         3,
		Wounds:        2,
		DefaultSkills: sk("personnel", "steadfast"),
		TotalCost:     14,
	},
	{
		ID:            "church-marksmen",
		Name:          "Chapel Marksman",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeMarksmen,
		BaseCost:      12,
		Competency:    4,
		Resilience:    2,
		Willpower:     3,
		Vigor:         2,
		Wounds:        1,
		DefaultSkills: sk("personnel", "marksmen"),
		TotalCost:     12,
	},
	{
		ID:            "church-gunner",
		Name:          "Ordnance Gunner",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeGunner,
		BaseCost:      13,
		Competency:    3,
		Resilience:    4,
		Willpower:     3,
		Vigor:         2,
		Wounds:        2,
		DefaultSkills: sk("personnel", "strong-arm"),
		TotalCost:     13,
	},
	{
		ID:            "church-support",
		Name:          "Field Chaplain",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeSupport,
		BaseCost:      11,
		Competency:    3,
		Resilience:    3,
		Willpower:     4,
		Vigor:         2,
		Wounds:        2,
		DefaultSkills: sk("personnel", "medic"),
		TotalCost:     11,
	},
	{
		ID:            "church-ironclad",
		Name:          "Diesel Ironclad",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeIronclad,
		BaseCost:      20,
		Competency:    3,
		Resilience:    5,
		Willpower:     3,
		Vigor:         2,
		Wounds:        4,
		DefaultSkills: sk("mechanized", "slow"),
		TotalCost:     20,
	},
	{
		ID:            "church-hallowed",
		Name:          "Hallowed Saint",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeHallowed,
		BaseCost:      22,
		Competency:    4,
		Resilience:    4,
		Willpower:     5,
		Vigor:         3,
		Wounds:        3,
		DefaultSkills: sk("aegis", "fearless"),
		TotalCost:     22,
	},
	{
		ID:            "church-operative",
		Name:          "Inquisitorial Operative",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeOperative,
		BaseCost:      15,
		Competency:    4,
		Resilience:    2,
		Willpower:     4,
		Vigor:         3,
		Wounds:        1,
		DefaultSkills: sk("personnel", "alert"),
		TotalCost:     15,
	},
	{
		ID:            "church-melee-specialist",
		Name:          "Zealot Duelist",
		FactionID:     FactionChurchOfTheMartyr,
		UnitType:      wb.UnitTypeMeleeSpecialist,
		BaseCost:      16,
		Competency:    4,
		Resilience:    3,
		Willpower:     4,
		Vigor:         4,
		Wounds:        2,
		DefaultSkills: sk("personnel", "duelist"),
		TotalCost:     16,
	},

	// Xiuhcoatl.
	{
		ID:            "xiuhcoatl-line-trooper",
		Name:          "Cultist Thrall",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeLineTrooper,
		BaseCost:      8,
		Competency:    2,
		Resilience:    2,
		Willpower:     2,
		Vigor:         2,
		Wounds:        1,
		DefaultSkills: sk("sacrificial"),
		TotalCost:     8,
	},
	{
		ID:            "xiuhcoatl-skirmisher",
		Name:          "Jungle Skirmisher",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeSkirmisher,
		BaseCost:      11,
		Competency:    3,
		Resilience:    2,
		Willpower:     3,
		Vigor:         3,
		Wounds:        1,
		DefaultSkills: sk("sacrificial"),
		TotalCost:     11,
	},
	{
		ID:            "xiuhcoatl-shock-trooper",
		Name:          "Blooded Warrior",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeShockTrooper,
		BaseCost:      13,
		Competency:    4,
		Resilience:    3,
		Willpower:     3,
		Vigor:         3,
		Wounds:        2,
		DefaultSkills: sk("personnel", "ferocious"),
		TotalCost:     13,
	},
	{
		ID:            "xiuhcoatl-gunner",
		Name:          "Maw Bearer",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeGunner,
		BaseCost:      13,
		Competency:    3,
		Resilience:    4,
		Willpower:     2,
		Vigor:         2,
		Wounds:        2,
		DefaultSkills: sk("personnel", "strong-arm"),
		TotalCost:     13,
	},
	{
		ID:            "xiuhcoatl-support",
		Name:          "Ritual Attendant",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeSupport,
		BaseCost:      10,
		Competency:    2,
		Resilience:    3,
		Willpower:     4,
		Vigor:         2,
		Wounds:        2,
		DefaultSkills: sk("personnel", "engineer"),
		TotalCost:     10,
	},
	{
		ID:            "xiuhcoatl-operative",
		Name:          "Serpent Agent",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeOperative,
		BaseCost:      14,
		Competency:    4,
		Resilience:    2,
		Willpower:     3,
		Vigor:         3,
		Wounds:        1,
		DefaultSkills: sk("personnel", "stealth"),
		TotalCost:     14,
	},
	{
		ID:            "xiuhcoatl-summoner",
		Name:          "Coatl Summoner",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeSummoner,
		BaseCost:      21,
		Competency:    3,
		Resilience:    2,
		Willpower:     5,
		Vigor:         2,
		Wounds:        2,
		DefaultSkills: sk("summoner", "ritualist"),
		TotalCost:     21,
	},
	{
		ID:            "xiuhcoatl-eldritch",
		Name:          "Bound Horror",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeEldritch,
		BaseCost:      24,
		Competency:    4,
		Resilience:    4,
		Willpower:     4,
		Vigor:         4,
		Wounds:        3,
		DefaultSkills: sk("horror", "fearsome"),
		TotalCost:     24,
	},
	{
		ID:            "xiuhcoatl-melee-specialist",
		Name:          "Obsidian Blade Dancer",
		FactionID:     FactionXiuhcoatl,
		UnitType:      wb.UnitTypeMeleeSpecialist,
		BaseCost:      16,
		Competency:    5,
		Resilience:    2,
		Willpower:     3,
		Vigor:         4,
		Wounds:        2,
		DefaultSkills: sk("personnel", "evasive"),
		TotalCost:     16,
	},
}
