package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

var equipmentItems = []wb.Equipment{
	// Grenades and explosives, single use.
	{
		ID:          "frag-grenade",
		Name:        "Frag Grenade",
		Cost:        4,
		Description: "Template (Circle) - CP 2 to all in range.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeLineTrooper,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryExplosive},
	},
	{
		ID:          "emp-grenade",
		Name:        "EMP Grenade",
		Cost:        5,
		Description: "Stun (Mechanical) - Disables Diesel armor & mechs 1 turn.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "flashbang",
		Name:        "Flashbang",
		Cost:        3,
		Description: "-1 Competency to all in template for 1 round.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear, wb.EquipmentCategoryStealthGear},
	},
	{
		ID:          "bloodchoke-gas",
		Name:        "Bloodchoke Gas",
		Cost:        6,
		Description: "Poison (1) - CP 1 per turn unless treated.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeOperative, wb.UnitTypeEldritch,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear, wb.EquipmentCategoryRitualGear},
	},
	{
		ID:          "hellflame-satchel",
		Name:        "Hellflame Satchel",
		Cost:        5,
		Description: "Burn - CP 2 fire damage over time in area.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeGunner,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryExplosive},
	},
	{
		ID:          "rattler",
		Name:        "Rattler",
		Cost:        3,
		Description: "Knockback (2\") to all in range.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryExplosive},
	},
	{
		ID:          "smoke-canister",
		Name:        "Smoke Canister",
		Cost:        3,
		Description: "6\" cloud blocks LoS.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear, wb.EquipmentCategoryStealthGear},
	},
	{
		ID:          "wire-nest",
		Name:        "Wire Nest",
		Cost:        4,
		Description: "6\" difficult terrain; entering units suffer Bleed (1).",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "choke-smoke",
		Name:        "Choke Smoke",
		Cost:        5,
		Description: "6\" cloud inflicts Stupor (Organic).",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear, wb.EquipmentCategoryRitualGear},
	},

	// Deployables and traps, single use.
	{
		ID:          "trophy",
		Name:        "Trophy",
		Cost:        6,
		Description: "3\" bubble: +1 Armor vs ranged for allies.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeHallowed,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "bouncing-reaper",
		Name:        "Bouncing Reaper",
		Cost:        5,
		Description: "CP 3 mine; explodes when enemy enters radius.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryExplosive, wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "trenchwork",
		Name:        "Trenchwork",
		Cost:        4,
		Description: "Deploys 6\" of hard cover.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeGunner,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "watchers-eye",
		Name:        "Watcher's Eye",
		Cost:        3,
		Description: "Reveals Stealth units within 8\".",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "deadmans-teeth",
		Name:        "Deadman's Teeth",
		Cost:        5,
		Description: "CP 1 + -1 Competency for moving enemies.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeOperative, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear, wb.EquipmentCategoryStealthGear},
	},
	{
		ID:          "scrambler",
		Name:        "Scrambler",
		Cost:        4,
		Description: "Slows Diesel/Ironclad movement by half.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeIronclad, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "watchmen",
		Name:        "Watchmen",
		Cost:        5,
		Description: "All units within 16\" gain free Reface.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeLineTrooper,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},

	// Tactical gear, limited charges.
	{
		ID:          "strider-pack",
		Name:        "Strider Pack",
		Cost:        6,
		Description: "Free 6\" jump. (3 charges)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "deadeye-visor",
		Name:        "Deadeye Visor",
		Cost:        5,
		Description: "+1 CP vs marked targets.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "blindspot-cloak",
		Name:        "Blindspot Cloak",
		Cost:        7,
		Description: "Gain Stealth for 1 round if out of LoS. (1 charge)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeOperative, wb.UnitTypeSkirmisher,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryStealthGear},
	},
	{
		ID:          "kickstarter",
		Name:        "Kickstarter",
		Cost:        8,
		Description: "Auto-regain 1 Wound when reduced to 0. (1 charge)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeHallowed,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical},
	},
	{
		ID:          "accelerator",
		Name:        "Accelerator",
		Cost:        6,
		Description: "1 free Attack/Reaction (no Vigor cost). (1 charge)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "resurge",
		Name:        "Resurge",
		Cost:        5,
		Description: "Grants/stabilizes immunity to Stun (Mechanical). (1 charge)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeIronclad, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "noct-lens",
		Name:        "Noct-Lens",
		Cost:        4,
		Description: "Ignores concealment; see through smoke.",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategorySupportGear},
	},

	// Medical and support, limited uses.
	{
		ID:          "medics-satchel",
		Name:        "Medic's Satchel",
		Cost:        6,
		Description: "Restores 1 Wound. (2 uses)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeHallowed,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical},
	},
	{
		ID:          "stimpack",
		Name:        "Stimpack",
		Cost:        4,
		Description: "+1 Vigor for 1 turn; -1 Competency next turn. (2 uses)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical},
	},
	{
		ID:          "ironspanner-kit",
		Name:        "Ironspanner Kit",
		Cost:        5,
		Description: "Heals 1 Wound to Mechanical units. (2 uses)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical, wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "fleshstitch-serum",
		Name:        "Fleshstitch Serum",
		Cost:        5,
		Description: "Regen 1 Wound at start of next activation. (1 use)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical, wb.EquipmentCategoryRitualGear},
	},
	{
		ID:          "numb-tonic",
		Name:        "Numb Tonic",
		Cost:        3,
		Description: "Reduce damage by 1 for 1 round. (1 use)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeHallowed, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical},
	},
	{
		ID:          "coagulant",
		Name:        "Coagulant",
		Cost:        2,
		Description: "Removes Bleed effect. (1 use)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical},
	},
	{
		ID:          "venopurge",
		Name:        "Venopurge",
		Cost:        2,
		Description: "Removes Poison effect. (1 use)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical},
	},
	{
		ID:          "hollowpoint-serum",
		Name:        "Hollowpoint Serum",
		Cost:        3,
		Description: "Removes Fear effects. (1 use)",
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeHallowed, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMedical},
	},
}
