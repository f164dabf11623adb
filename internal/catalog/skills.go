package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// Skill categories are assigned from each skill's mechanics; they only
// matter to the faction cost resolver.
var skills = []wb.Skill{
	{
		ID:   "hasty-fire",
		Name: "Hasty Fire",
		Cost: 2,
		Description: "If this unit makes a full move and then performs an attack action, it " +
			"suffers -1 Competency for the attack.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeMarksmen, wb.UnitTypeGunner,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryRanged, wb.SkillCategoryOffensive},
	},
	{
		ID:   "steadfast",
		Name: "Steadfast",
		Cost: 3,
		Description: "This unit may automatically pass Willpower checks caused by fear or " +
			"suppression X times per game.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSupport, wb.UnitTypeIronclad,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMorale},
	},
	{
		ID:   "disciplined-advance",
		Name: "Disciplined Advance",
		Cost: 2,
		Description: "This unit suffers no movement penalties when moving through difficult " +
			"terrain.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMovement},
	},
	{
		ID:   "tactical-coordination",
		Name: "Tactical Coordination",
		Cost: 4,
		Description: "This unit can use the Coordination skill to grant a nearby friendly " +
			"unit a free non-attack action, such as moving or taking cover.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryCoordination, wb.SkillCategorySupport},
	},
	{
		ID:   "combat-reflex",
		Name: "Combat Reflex",
		Cost: 5,
		Description: "Once per round, this unit may perform an additional reaction without " +
			"spending Vigor.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher, wb.UnitTypeMeleeSpecialist,
			wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryDefensive},
	},
	{
		ID:          "ambusher",
		Name:        "Ambusher",
		Cost:        3,
		Description: "Gain +1 CP when attacking an enemy unit outside of their line of fire.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeMarksmen, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryStealth, wb.SkillCategoryOffensive},
	},
	{
		ID:   "resilient",
		Name: "Resilient",
		Cost: 4,
		Description: "The first time this unit would take a wound, roll a die. If the result " +
			"is lower than this unit's Resilience, the wound is ignored.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeIronclad, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryDefensive},
	},
	{
		ID:   "stealth",
		Name: "Stealth",
		Cost: 4,
		Description: "This unit can enter stealth mode, swapping its model for a stealth " +
			"token. While in stealth, the unit moves slower and cannot attack or react but " +
			"cannot be targeted until discovered or it performs an aggressive action.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryStealth},
	},
	{
		ID:   "precision",
		Name: "Precision",
		Cost: 3,
		Description: "When attacking from stealth or outside an enemy's line of fire, this " +
			"unit ignores 1 point of Armor.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen, wb.UnitTypeSkirmisher, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryRanged, wb.SkillCategoryStealth},
	},
	{
		ID:   "combat-coordination",
		Name: "Combat Coordination",
		Cost: 5,
		Description: "This unit can use the Coordination skill to grant a nearby unit a free " +
			"action, including a limited attack (e.g., a standard attack without special " +
			"abilities).",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryCoordination, wb.SkillCategorySupport},
	},
	{
		ID:   "infiltration",
		Name: "Infiltration",
		Cost: 3,
		Description: "This unit may deploy anywhere on the battlefield outside the enemy's " +
			"deployment zone at the start of the game.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryStealth, wb.SkillCategoryMovement},
	},
	{
		ID:   "scaling",
		Name: "Scaling",
		Cost: 2,
		Description: "This unit can scale vertical surfaces without suffering movement " +
			"penalties.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeMeleeSpecialist, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMovement},
	},
	{
		ID:          "illusive",
		Name:        "Illusive",
		Cost:        2,
		Description: "When this unit is in cover, it gains an additional +1 Armor.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeOperative, wb.UnitTypeEldritch,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryDefensive, wb.SkillCategoryStealth},
	},
	{
		ID:   "shield-wall",
		Name: "Shield Wall",
		Cost: 3,
		Description: "When adjacent to another unit with this skill, both units gain +1 " +
			"Armor.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeIronclad,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryDefensive},
	},
	{
		ID:   "medic",
		Name: "Medic",
		Cost: 4,
		Description: "This unit can spend an action to heal 1 wound on a friendly unit " +
			"within 8 inches.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMedical, wb.SkillCategorySupport},
	},
	{
		ID:          "engineer",
		Name:        "Engineer",
		Cost:        3,
		Description: "This unit can deploy or disarm traps and repair damaged equipment.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategorySupport},
	},
	{
		ID:   "marksmen",
		Name: "Marksmen",
		Cost: 3,
		Description: "When using weapons with the Long Range tag, this unit ignores cover " +
			"bonuses to the enemy's Armor.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryRanged},
	},
	{
		ID:          "aegis",
		Name:        "Aegis",
		Cost:        3,
		Description: "Gain +X Willpower when resisting eldritch or psychic attacks.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeHallowed, wb.UnitTypeIronclad,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryDefensive},
	},
	{
		ID:   "fearless",
		Name: "Fearless",
		Cost: 4,
		Description: "This unit is completely immune to fear-based morale effects (Horror, " +
			"Terror, Suppressive, etc.). Does not roll Morale Checks from Suppression or Fear " +
			"sources.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeIronclad, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMorale},
	},
	{
		ID:   "alert",
		Name: "Alert",
		Cost: 2,
		Description: "This unit gains a +X Willpower bonus when attempting to detect " +
			"camouflaged units.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen, wb.UnitTypeOperative, wb.UnitTypeLineTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategorySupport},
	},
	{
		ID:          "strong-arm",
		Name:        "Strong Arm",
		Cost:        3,
		Description: "This unit ignores the effects of the Unwieldy and deployed weapon tags.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategorySupport},
	},
	{
		ID:          "mechanized",
		Name:        "Mechanized",
		Cost:        2,
		Description: "This unit has mechanical augmentations.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.SkillCategory{wb.SkillCategorySupport},
	},
	{
		ID:          "personnel",
		Name:        "Personnel",
		Cost:        1,
		Description: "This unit is standard personnel.",
		Categories:  []wb.SkillCategory{wb.SkillCategorySupport},
	},
	{
		ID:   "sacrificial",
		Name: "Sacrificial",
		Cost: 1,
		Description: "This unit is a component of powerful rituals. When this unit dies, " +
			"each unit with the Ritualist tag gains 1 Ritual Token. If a unit with the " +
			"Ritualist tag is within 8in, instead that unit gains 1d3 Ritual Tokens.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeSkirmisher,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryRitual},
	},
	{
		ID:   "ritualist",
		Name: "Ritualist",
		Cost: 4,
		Description: "When this unit kills a unit with the Sacrificial tag, add 1d3 Ritual " +
			"Tokens to the shared pool.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeSummoner, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryRitual},
	},
	{
		ID:   "expendable",
		Name: "Expendable",
		Cost: 2,
		Description: "If a friendly unit within 8 inches takes damage, this unit may use " +
			"its reaction to take the damage instead.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeIronclad,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryDefensive, wb.SkillCategorySupport},
	},
	{
		ID:          "conduit",
		Name:        "Conduit",
		Cost:        3,
		Description: "Once per round, this unit may reroll a failed summoning attempt.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeSummoner, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryRitual},
	},
	{
		ID:          "summoner",
		Name:        "Summoner",
		Cost:        5,
		Description: "This unit can summon eldritch or spiritual beings to aid in combat.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSummoner, wb.UnitTypeEldritch, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryRitual},
	},
	{
		ID:   "guardian",
		Name: "Guardian",
		Cost: 3,
		Description: "If an ally with the (X) tag is attacked within 8 inches, this unit " +
			"may react to intercept the attack.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeIronclad, wb.UnitTypeShockTrooper, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryDefensive, wb.SkillCategorySupport},
	},
	{
		ID:          "fast",
		Name:        "Fast",
		Cost:        3,
		Description: "Gain +2 inches of movement.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeOperative, wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMovement},
	},
	{
		ID:          "slow",
		Name:        "Slow",
		Cost:        -2,
		Description: "Lose -2 inches of movement.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad, wb.UnitTypeSummoner,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMovement},
	},
	{
		ID:   "evasive",
		Name: "Evasive",
		Cost: 3,
		Description: "If this unit uses an action to perform a Move, it gains +1 Armor " +
			"against ranged attacks until the end of the turn.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeOperative, wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMovement, wb.SkillCategoryDefensive},
	},
	{
		ID:          "duelist",
		Name:        "Duelist",
		Cost:        3,
		Description: "Gain +1 CP in melee when engaged with only one enemy unit.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist, wb.UnitTypeOperative, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMelee},
	},
	{
		ID:   "unyielding",
		Name: "Unyielding",
		Cost: 3,
		Description: "When this unit loses a face-to-face melee roll, it may roll a single " +
			"attack die to deal 1 damage on a success.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist, wb.UnitTypeIronclad, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMelee},
	},
	{
		ID:   "ferocious",
		Name: "Ferocious",
		Cost: 3,
		Description: "If this unit kills all enemy models in base-to-base contact during " +
			"its activation, it may immediately make a free 3-inch move.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist, wb.UnitTypeShockTrooper, wb.UnitTypeEldritch,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMelee, wb.SkillCategoryMovement},
	},
	{
		ID:          "melee",
		Name:        "Melee",
		Cost:        3,
		Description: "Gain +X Competency in melee.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist, wb.UnitTypeShockTrooper, wb.UnitTypeOperative,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMelee},
	},
	{
		ID:   "melee-intercept",
		Name: "Melee Intercept",
		Cost: 4,
		Description: "When an enemy enters melee range of this unit for the first time " +
			"during their activation, this unit may make a free melee attack before the " +
			"enemy resolves their attack.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist, wb.UnitTypeIronclad, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMelee, wb.SkillCategoryDefensive},
	},
	{
		ID:   "fearsome",
		Name: "Fearsome",
		Cost: 3,
		Description: "Enemies within X inches suffer -1 to Willpower checks when forced to " +
			"make a Morale Check.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeMeleeSpecialist, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryFear},
	},
	{
		ID:   "horror",
		Name: "Horror",
		Cost: 4,
		Description: "When an enemy unit activates within 6 inches and has line of sight to " +
			"this unit, it must immediately make a Morale Check. On failure, the enemy drops " +
			"1 Morale Level. If already Broken, the unit must immediately retreat its full " +
			"movement instead of testing.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeHallowed,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryFear},
	},
	{
		ID:   "indomitable",
		Name: "Indomitable",
		Cost: 3,
		Description: "This unit may re-roll failed Willpower checks against Morale effects " +
			"once per round.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeIronclad, wb.UnitTypeHallowed, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMorale},
	},
	{
		ID:   "numb",
		Name: "Numb",
		Cost: 2,
		Description: "This unit automatically passes the first morale check each round, but " +
			"still takes penalties normally if it fails later checks.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeSkirmisher, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMorale},
	},
	{
		ID:          "unshakable",
		Name:        "Unshakable",
		Cost:        2,
		Description: "This unit ignores morale loss from allies dying nearby.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeSupport, wb.UnitTypeShockTrooper, wb.UnitTypeIronclad,
		},
		Categories: []wb.SkillCategory{wb.SkillCategoryMorale},
	},
}
