package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// kws resolves authored keyword ids into full definitions. Panics on a
// typo so bad data fails at startup rather than pricing silently wrong.
func kws(ids ...string) []wb.WeaponKeyword {
	out := make([]wb.WeaponKeyword, len(ids))
	for i, id := range ids {
		found := false
		for _, k := range weaponKeywords {
			if k.ID == id {
				out[i] = k
				found = true
				break
			}
		}
		if !found {
			panic("catalog: unknown weapon keyword " + id)
		}
	}
	return out
}

func factionRef(id string) []wb.Faction {
	for _, f := range factions {
		if f.ID == id {
			return []wb.Faction{f}
		}
	}
	panic("catalog: unknown faction " + id)
}

var weapons = []wb.Weapon{
	{
		ID:             "bolt-rifle",
		Name:           "Bolt Rifle",
		Cost:           8,
		Description:    "Standard issue rifle with excellent range and reliability.",
		CombatPower:    3,
		WeaponKeywords: kws("steady", "anti-infantry", "long-range"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeMarksmen, wb.UnitTypeSupport, wb.UnitTypeGunner,
			wb.UnitTypeSummoner, wb.UnitTypeIronclad, wb.UnitTypeEldritch,
			wb.UnitTypeHallowed, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryLongRange},
	},
	{
		ID:             "assault-pistol",
		Name:           "Assault Pistol",
		Cost:           8,
		Description:    "Rapid-firing close-quarters sidearm.",
		CombatPower:    2,
		WeaponKeywords: kws("rapid-fire", "close-range", "suppressive", "anti-infantry"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:             "heavy-machine-gun",
		Name:           "Heavy Machine Gun",
		Cost:           17,
		Description:    "High-volume suppressive fire weapon.",
		CombatPower:    4,
		WeaponKeywords: kws("long-range", "rapid-fire", "deployed", "suppressive", "spray-2"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryLongRange, wb.EquipmentCategorySupportGear,
		},
	},
	{
		ID:             "submachine-gun",
		Name:           "Submachine Gun",
		Cost:           12,
		Description:    "Compact automatic weapon for close encounters.",
		CombatPower:    4,
		WeaponKeywords: kws("rapid-fire", "close-range", "anti-infantry", "spray-2"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeMarksmen, wb.UnitTypeGunner, wb.UnitTypeSupport,
			wb.UnitTypeOperative, wb.UnitTypeSummoner,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:             "long-rifle",
		Name:           "Long Rifle",
		Cost:           11,
		Description:    "Long-range precision rifle with armor-piercing capabilities.",
		CombatPower:    3,
		WeaponKeywords: kws("long-range", "steady", "ap-1", "anti-infantry"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryLongRange, wb.EquipmentCategoryAntiArmor,
		},
	},
	{
		ID:             "revolver",
		Name:           "Revolver",
		Cost:           9,
		Description:    "Powerful sidearm with good stopping power.",
		CombatPower:    3,
		WeaponKeywords: kws("ap-1", "close-range", "savage-1", "anti-infantry"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeMarksmen, wb.UnitTypeGunner, wb.UnitTypeSupport,
			wb.UnitTypeOperative, wb.UnitTypeSummoner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:             "pistol",
		Name:           "Pistol",
		Cost:           2,
		Description:    "Basic sidearm for close-quarters defense.",
		CombatPower:    2,
		WeaponKeywords: kws("close-range", "anti-infantry"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeMarksmen, wb.UnitTypeGunner, wb.UnitTypeSupport,
			wb.UnitTypeOperative, wb.UnitTypeSummoner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:             "storm-rifle",
		Name:           "Storm Rifle",
		Cost:           15,
		Description:    "Heavy assault rifle with high rate of fire.",
		CombatPower:    4,
		WeaponKeywords: kws("rapid-fire", "suppressive", "spray-2", "anti-infantry", "unwieldy"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeGunner, wb.UnitTypeOperative, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryRangedWeapon},
	},
	{
		ID:             "autocannon",
		Name:           "Autocannon",
		Cost:           13,
		Description:    "Heavy support weapon with explosive projectiles.",
		CombatPower:    4,
		WeaponKeywords: kws("long-range", "deployed", "anti-infantry", "explosive", "ap-1"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryLongRange, wb.EquipmentCategoryExplosive,
		},
	},
	{
		ID:             "trenchgun",
		Name:           "Trenchgun",
		Cost:           9,
		Description:    "Close-range shotgun designed for trench warfare.",
		CombatPower:    3,
		WeaponKeywords: kws("close-range", "template-cone", "anti-infantry", "knockback"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:             "flamethrower",
		Name:           "Flamethrower",
		Cost:           9,
		Description:    "Incendiary weapon that spews flames in a cone.",
		CombatPower:    3,
		WeaponKeywords: kws("close-range", "template-cone", "anti-infantry", "burn", "overheat-2"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:          "light-rocket-launcher",
		Name:        "Light Rocket Launcher",
		Cost:        18,
		Description: "Portable anti-mechanized rocket system.",
		CombatPower: 4,
		WeaponKeywords: kws(
			"long-range", "explosive", "template-circle", "reload", "anti-mechanized", "ap-2",
		),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryAntiArmor, wb.EquipmentCategoryExplosive,
		},
	},
	{
		ID:          "heavy-rocket-launcher",
		Name:        "Heavy Rocket Launcher",
		Cost:        21,
		Description: "Heavy anti-tank weapon with serious punch.",
		CombatPower: 4,
		WeaponKeywords: kws(
			"ap-3", "long-range", "explosive", "template-circle", "reload", "anti-mechanized",
		),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryAntiArmor, wb.EquipmentCategoryExplosive,
		},
	},
	{
		ID:          "grenade-launcher-explosive",
		Name:        "Grenade Launcher (Explosive)",
		Cost:        9,
		Description: "Launches explosive grenades at medium range.",
		CombatPower: 3,
		WeaponKeywords: kws(
			"long-range", "unwieldy", "explosive", "targetless", "template-circle",
			"reload", "anti-infantry",
		),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryExplosive},
	},
	{
		ID:          "grenade-launcher-toxic",
		Name:        "Grenade Launcher (Toxic)",
		Cost:        11,
		Description: "Launches toxin grenades that stun organic targets.",
		CombatPower: 3,
		WeaponKeywords: kws(
			"long-range", "unwieldy", "explosive", "targetless", "template-circle",
			"stun-organic", "reload", "anti-infantry", "non-lethal",
		),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeLineTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategorySupportGear},
	},
	{
		ID:          "grenade-launcher-poison",
		Name:        "Grenade Launcher (Poison)",
		Cost:        12,
		Description: "Launches poison gas grenades.",
		CombatPower: 3,
		WeaponKeywords: kws(
			"long-range", "unwieldy", "explosive", "targetless", "template-circle",
			"reload", "anti-infantry", "poison",
		),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategorySupportGear},
	},
	{
		ID:             "bayonet",
		Name:           "Bayonet",
		Cost:           12,
		Description:    "Mounted blade for close combat.",
		CombatPower:    3,
		WeaponKeywords: kws("melee", "reach", "charge"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeOperative, wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "greatsword",
		Name:           "Greatsword",
		Cost:           15,
		Description:    "Massive two-handed sword.",
		CombatPower:    4,
		WeaponKeywords: kws("colossal", "brutal", "reach", "savage-1", "melee", "two-handed"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "longsword",
		Name:           "Longsword",
		Cost:           11,
		Description:    "Versatile sword balancing attack and defense.",
		CombatPower:    3,
		WeaponKeywords: kws("melee", "parry"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "gauss-rifle",
		Name:           "Gauss Rifle",
		Cost:           21,
		Description:    "Advanced magnetic weapon with high penetration.",
		CombatPower:    3,
		WeaponKeywords: kws("ap-2", "steady", "lock"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen, wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryAntiArmor, wb.EquipmentCategoryLongRange,
		},
	},
	{
		ID:             "arc-rifle",
		Name:           "Arc Rifle",
		Cost:           17,
		Description:    "Electrical weapon that can chain between targets.",
		CombatPower:    4,
		WeaponKeywords: kws("close-range", "stun-organic", "arc-2", "overheat-3"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSupport, wb.UnitTypeIronclad, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategorySupportGear},
	},
	{
		ID:             "trench-club",
		Name:           "Trench Club",
		Cost:           13,
		Description:    "Brutal improvised melee weapon.",
		CombatPower:    3,
		WeaponKeywords: kws("melee", "brutal", "stun-organic"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeMarksmen, wb.UnitTypeGunner, wb.UnitTypeSupport,
			wb.UnitTypeOperative, wb.UnitTypeSummoner, wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "entrenching-tool",
		Name:           "Entrenching Tool",
		Cost:           15,
		Description:    "Multi-purpose digging tool used as a weapon.",
		CombatPower:    3,
		WeaponKeywords: kws("melee", "parry", "bleed", "shove"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
			wb.UnitTypeGunner,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategorySupportGear},
	},
	{
		ID:             "bowie-knife",
		Name:           "Bowie Knife",
		Cost:           12,
		Description:    "Large combat knife for silent kills.",
		CombatPower:    2,
		WeaponKeywords: kws("melee", "silenced", "savage-1", "backstab-1"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeOperative,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryStealthGear},
	},
	{
		ID:             "knuckle-dusters",
		Name:           "Knuckle Dusters",
		Cost:           14,
		Description:    "Reinforced hand weapon for close combat.",
		CombatPower:    3,
		WeaponKeywords: kws("shove", "charge", "brutal", "melee"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "pickaxe",
		Name:           "Pickaxe",
		Cost:           16,
		Description:    "Mining tool repurposed as a weapon.",
		CombatPower:    4,
		WeaponKeywords: kws("two-handed", "brutal", "ap-2", "unwieldy", "melee"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeGunner, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryAntiArmor},
	},
	{
		ID:             "barbwire-whip",
		Name:           "Barbwire Whip",
		Cost:           12,
		Description:    "Cruel whip laced with barbed wire.",
		CombatPower:    2,
		WeaponKeywords: kws("bleed", "hooked", "reach", "melee"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSkirmisher, wb.UnitTypeOperative, wb.UnitTypeSupport,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "axe",
		Name:           "Axe",
		Cost:           15,
		Description:    "Heavy cutting weapon with good penetration.",
		CombatPower:    4,
		WeaponKeywords: kws("ap-1", "two-handed", "melee", "cleave"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "poleaxe",
		Name:           "Poleaxe",
		Cost:           15,
		Description:    "Long-hafted axe with armor-piercing spike.",
		CombatPower:    3,
		WeaponKeywords: kws("two-handed", "reach", "ap-2", "brutal", "melee"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryAntiArmor},
	},
	{
		ID:             "halberd",
		Name:           "Halberd",
		Cost:           13,
		Description:    "Versatile polearm with axe head and spear point.",
		CombatPower:    4,
		WeaponKeywords: kws("cleave", "two-handed", "reach", "melee"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "macuahuitl",
		Name:           "Macuahuitl",
		Cost:           14,
		Description:    "Ancient weapon embedded with obsidian blades.",
		CombatPower:    3,
		WeaponKeywords: kws("bleed", "brutal", "savage-1", "melee"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryRitualGear},
	},
	{
		ID:             "serpents-fang",
		Name:           "Serpent's Fang",
		Cost:           17,
		Description:    "Ritualistic poisoned dagger.",
		CombatPower:    2,
		WeaponKeywords: kws("ritual", "swift", "poison", "savage-1", "bleed"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeOperative, wb.UnitTypeSummoner, wb.UnitTypeMeleeSpecialist,
			wb.UnitTypeEldritch,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryRitualGear},
	},
	{
		ID:             "spineblade",
		Name:           "Spineblade",
		Cost:           23,
		Description:    "Mystical blade that drains life force.",
		CombatPower:    4,
		WeaponKeywords: kws("melee", "syphon", "purge"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeHallowed, wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryRitualGear},
	},
	{
		ID:             "soulsplint-chakrams",
		Name:           "Soulsplint Chakrams",
		Cost:           24,
		Description:    "Mystical throwing weapons that return to the wielder.",
		CombatPower:    3,
		WeaponKeywords: kws("returning", "swift", "bleed", "arc-2"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeEldritch, wb.UnitTypeMeleeSpecialist,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryRitualGear},
	},
	{
		ID:             "trench-spear",
		Name:           "Trench Spear",
		Cost:           13,
		Description:    "Reinforced spear for trench combat.",
		CombatPower:    3,
		WeaponKeywords: kws("reach", "shove", "melee", "ap-1"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeLineTrooper, wb.UnitTypeShockTrooper, wb.UnitTypeSkirmisher,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "trench-sweeper",
		Name:           "Trench Sweeper",
		Cost:           10,
		Description:    "Specialized shotgun for clearing trenches.",
		CombatPower:    4,
		WeaponKeywords: kws("close-range", "anti-infantry", "spray-3"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:             "ripper-sawblade",
		Name:           "Ripper Sawblade",
		Cost:           14,
		Description:    "Motorized sawblade weapon.",
		CombatPower:    4,
		WeaponKeywords: kws("brutal", "bleed", "two-handed", "melee"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMeleeSpecialist, wb.UnitTypeIronclad,
		},
		Categories: []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},

	// Church of the Martyr relics.
	{
		ID:             "gilded-bolt-rifle",
		Name:           "Gilded Bolt Rifle",
		Cost:           11,
		Description:    "Sanctified rifle engraved with holy symbols.",
		CombatPower:    3,
		WeaponKeywords: kws("steady", "long-range", "anti-infantry", "smite"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeMarksmen, wb.UnitTypeOperative,
		},
		FactionRestriction: factionRef(FactionChurchOfTheMartyr),
		Categories:         []wb.EquipmentCategory{wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryLongRange},
	},
	{
		ID:             "sanctified-autocannon",
		Name:           "Sanctified Autocannon",
		Cost:           13,
		Description:    "Blessed heavy weapon to purge heretics.",
		CombatPower:    4,
		WeaponKeywords: kws("long-range", "deployed", "ap-1", "anti-infantry", "smite"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		FactionRestriction: factionRef(FactionChurchOfTheMartyr),
		Categories:         []wb.EquipmentCategory{wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryLongRange},
	},
	{
		ID:             "spear-of-saint-varro",
		Name:           "Spear of Saint Varro",
		Cost:           27,
		Description:    "Holy relic spear that purges the wicked.",
		CombatPower:    4,
		WeaponKeywords: kws("melee", "reach", "smite", "ap-2", "purge"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeHallowed, wb.UnitTypeMeleeSpecialist,
		},
		FactionRestriction: factionRef(FactionChurchOfTheMartyr),
		Categories:         []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryAntiArmor},
	},
	{
		ID:             "saints-blood-maul",
		Name:           "Saints Blood Maul",
		Cost:           16,
		Description:    "Heavy hammer blessed with martyrs' blood.",
		CombatPower:    3,
		WeaponKeywords: kws("melee", "smite", "brutal", "stun-eldritch"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeHallowed, wb.UnitTypeMeleeSpecialist,
		},
		FactionRestriction: factionRef(FactionChurchOfTheMartyr),
		Categories:         []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon},
	},
	{
		ID:             "purifier",
		Name:           "Purifyer",
		Cost:           14,
		Description:    "Holy flamethrower that burns away sin.",
		CombatPower:    3,
		WeaponKeywords: kws("close-range", "template-cone", "burn", "overheat-3", "smite"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeGunner, wb.UnitTypeIronclad,
		},
		FactionRestriction: factionRef(FactionChurchOfTheMartyr),
		Categories:         []wb.EquipmentCategory{wb.EquipmentCategoryHeavyWeapon, wb.EquipmentCategoryCloseCombat},
	},
	{
		ID:             "judges-pistol",
		Name:           "Judge's Pistol",
		Cost:           20,
		Description:    "Hand cannon used by church judges to execute heretics.",
		CombatPower:    3,
		WeaponKeywords: kws("close-range", "ap-2", "purge"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeShockTrooper, wb.UnitTypeOperative, wb.UnitTypeHallowed,
		},
		FactionRestriction: factionRef(FactionChurchOfTheMartyr),
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryCloseCombat, wb.EquipmentCategoryAntiArmor,
		},
	},

	// Xiuhcoatl relics.
	{
		ID:             "xotecs-twin-fangs",
		Name:           "Xotec's Twin Fangs",
		Cost:           20,
		Description:    "Paired ritual daggers used in blood sacrifice.",
		CombatPower:    3,
		WeaponKeywords: kws("melee", "swift", "syphon", "poison"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeOperative, wb.UnitTypeSummoner, wb.UnitTypeMeleeSpecialist,
		},
		FactionRestriction: factionRef(FactionXiuhcoatl),
		Categories:         []wb.EquipmentCategory{wb.EquipmentCategoryMeleeWeapon, wb.EquipmentCategoryRitualGear},
	},
	{
		ID:             "sun-eater-maw",
		Name:           "Sun Eater Maw",
		Cost:           14,
		Description:    "Eldritch beam weapon that channels solar energy.",
		CombatPower:    4,
		WeaponKeywords: kws("long-range", "beam", "burn", "overheat-4", "ritual"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeGunner, wb.UnitTypeIronclad, wb.UnitTypeEldritch,
		},
		FactionRestriction: factionRef(FactionXiuhcoatl),
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryRitualGear, wb.EquipmentCategoryLongRange,
		},
	},
	{
		ID:             "tezcatlipocas-gaze",
		Name:           "Tezcatlipoca's Gaze",
		Cost:           18,
		Description:    "Eldritch weapon that emits arcs of dark energy.",
		CombatPower:    3,
		WeaponKeywords: kws("close-range", "arc-2", "stun-organic", "ritual"),
		UnitRestriction: []wb.UnitType{
			wb.UnitTypeSummoner, wb.UnitTypeEldritch, wb.UnitTypeShockTrooper,
		},
		FactionRestriction: factionRef(FactionXiuhcoatl),
		Categories: []wb.EquipmentCategory{
			wb.EquipmentCategoryRangedWeapon, wb.EquipmentCategoryRitualGear, wb.EquipmentCategoryCloseCombat,
		},
	},
}
