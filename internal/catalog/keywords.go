package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

var weaponKeywords = []wb.WeaponKeyword{
	{
		ID:          "steady",
		Name:        "Steady",
		Description: "This weapon gains +1 CP if the user did not move during this activation.",
		Cost:        3,
	},
	{
		ID:          "ap-1",
		Name:        "AP(1)",
		Description: "This weapon reduces the target's Armor by 1",
		Cost:        3,
	},
	{
		ID:          "ap-2",
		Name:        "AP(2)",
		Description: "This weapon reduces the target's Armor by 2",
		Cost:        6,
	},
	{
		ID:          "ap-3",
		Name:        "AP(3)",
		Description: "This weapon reduces the target's Armor by 3",
		Cost:        9,
	},
	{
		ID:          "rapid-fire",
		Name:        "Rapid Fire",
		Description: "This weapon may re-roll one failed roll. The new result must be kept.",
		Cost:        3,
	},
	{
		ID:          "long-range",
		Name:        "Long Range",
		Description: "Attacks within 8 inches suffer -1 CP",
		Cost:        -1,
	},
	{
		ID:          "close-range",
		Name:        "Close Range",
		Description: "Attacks outside of 8 inches suffer a -1 CP",
		Cost:        -1,
	},
	{
		ID:          "unwieldy",
		Name:        "Unwieldy",
		Description: "This weapon suffers -1 CP if the user moved this turn.",
		Cost:        -1,
	},
	{
		ID:   "explosive",
		Name: "Explosive",
		Description: "On a successful attack, all units within the template (circle) of the " +
			"target are hit with half the original attack's CP",
		Cost: 3,
	},
	{
		ID:   "targetless",
		Name: "Targetless",
		Description: "This weapon can target an area within range instead of a unit. Attacks " +
			"made out of line of sight suffer a -1 Competency.",
		Cost: 1,
	},
	{
		ID:          "deployed",
		Name:        "Deployed",
		Description: "Firing this weapon requires a deployment action.",
		Cost:        -1,
	},
	{
		ID:   "beam",
		Name: "Beam",
		Description: "This weapon fires a 1in straight beam; all units in its path take a hit. " +
			"Terrain blocks the line of fire",
		Cost: 3,
	},
	{
		ID:          "template-cone",
		Name:        "Template (Cone)",
		Description: "All units within the template take a hit.",
		Cost:        3,
	},
	{
		ID:          "template-circle",
		Name:        "Template (Circle)",
		Description: "All units within the template take a hit.",
		Cost:        3,
	},
	{
		ID:   "suppressive",
		Name: "Supressive",
		Description: "When this weapon hits an enemy, they must make a Willpower check. On " +
			"failure, they drop 1 Morale Level. If they are already Broken, they must retreat " +
			"6 inches toward cover.",
		Cost: 3,
	},
	{
		ID:   "arc-1",
		Name: "Arc (1)",
		Description: "If this attack hits, it arcs to hit up to 1 other units within 2 inches. " +
			"These secondary attacks must be rolled as normal",
		Cost: 3,
	},
	{
		ID:   "arc-2",
		Name: "Arc (2)",
		Description: "If this attack hits, it arcs to hit up to 2 other units within 2 inches. " +
			"These secondary attacks must be rolled as normal",
		Cost: 6,
	},
	{
		ID:   "arc-3",
		Name: "Arc (3)",
		Description: "If this attack hits, it arcs to hit up to 3 other units within 2 inches. " +
			"These secondary attacks must be rolled as normal",
		Cost: 9,
	},
	{
		ID:          "silenced",
		Name:        "Silenced",
		Description: "When attacking in the back arc of a unit, gain +1 CP",
		Cost:        3,
	},
	{
		ID:   "stun-organic",
		Name: "Stun(Organic)",
		Description: "On a successful hit, the target must make a Resilience check. On a " +
			"failure, they must choose between moving OR taking an action on their next " +
			"activation (not both). This effect only applies to organic targets.",
		Cost: 3,
	},
	{
		ID:   "stun-mechanical",
		Name: "Stun(Mechanical)",
		Description: "On a successful hit, the target must make a Resilience check. On a " +
			"failure, they must choose between moving OR taking an action on their next " +
			"activation (not both). This effect only applies to mechanical targets.",
		Cost: 3,
	},
	{
		ID:   "stun-eldritch",
		Name: "Stun(Eldritch)",
		Description: "On a successful hit, the target must make a Resilience check. On a " +
			"failure, they must choose between moving OR taking an action on their next " +
			"activation (not both). This effect only applies to eldritch targets.",
		Cost: 3,
	},
	{
		ID:   "stun-holy",
		Name: "Stun(Holy)",
		Description: "On a successful hit, the target must make a Resilience check. On a " +
			"failure, they must choose between moving OR taking an action on their next " +
			"activation (not both). This effect only applies to holy targets.",
		Cost: 3,
	},
	{
		ID:   "reload",
		Name: "Reload",
		Description: "After every attack, this weapon requires an action to reload before it " +
			"can be fired again.",
		Cost: -2,
	},
	{
		ID:   "charge-up",
		Name: "Charge Up",
		Description: "The user may attempt a Charge-Up roll before attacking. Roll a D10: On a " +
			"roll of 1, the user is hit by the weapon. On any other result, the weapon gains " +
			"+1 CP for the next attack. This can be done up to 3 times in a row, with each " +
			"successive attempt increasing the chance of failure. For the second roll, a 1 or " +
			"2 results in the user being hit. For the third roll, a 1, 2, or 3 results in the " +
			"user being hit. Successfully charging up to 3 times grants a total of +3 CP for " +
			"the attack.",
		Cost: 1,
	},
	{
		ID:   "overheat-1",
		Name: "Overheat (1)",
		Description: "After attacking, roll a D10. On a roll above 1, the weapon overheats, " +
			"and the user cannot use it during their next activation.",
		Cost: -1,
	},
	{
		ID:   "overheat-2",
		Name: "Overheat (2)",
		Description: "After attacking, roll a D10. On a roll above 2, the weapon overheats, " +
			"and the user cannot use it during their next activation.",
		Cost: -2,
	},
	{
		ID:   "overheat-3",
		Name: "Overheat (3)",
		Description: "After attacking, roll a D10. On a roll above 3, the weapon overheats, " +
			"and the user cannot use it during their next activation.",
		Cost: -3,
	},
	{
		ID:   "overheat-4",
		Name: "Overheat (4)",
		Description: "After attacking, roll a D10. On a roll above 4, the weapon overheats, " +
			"and the user cannot use it during their next activation.",
		Cost: -4,
	},
	{
		ID:   "overheat-5",
		Name: "Overheat (5)",
		Description: "After attacking, roll a D10. On a roll above 5, the weapon overheats, " +
			"and the user cannot use it during their next activation.",
		Cost: -5,
	},
	{
		ID:   "emp",
		Name: "EMP",
		Description: "On a successful hit on a unit with the mechanized tag, the target must " +
			"make a Competency check. On a failure, the unit can only either move or take an " +
			"action on its next activation, not both",
		Cost: 3,
	},
	{
		ID:   "lock",
		Name: "Lock",
		Description: "When this weapon hits a mech, the target must make a Competency check. " +
			"On a failure, the mech becomes \"Locked\" and cannot move during its next " +
			"activation. It can still perform other actions, such as attacking or using " +
			"non-movement abilities",
		Cost: 3,
	},
	{
		ID:   "beacon",
		Name: "Beacon",
		Description: "When this weapon hits a unit, place a \"Targeted\" token on the target. " +
			"While the target has this token, all attacks with the \"Guided\" trait gain +1 CP " +
			"against it. The \"Targeted\" token remains until the target unit spends an action " +
			"to remove it.",
		Cost: 1,
	},
	{
		ID:          "guided",
		Name:        "Guided",
		Description: "Gain +1 CP against targets marked with a \"Targeted\" token.",
		Cost:        3,
	},
	{
		ID:          "anti-mechanized",
		Name:        "Anti-mechanized (AM)",
		Description: "This weapon uses half its CP when attacking units with the [infantry] keyword.",
		Cost:        -3,
	},
	{
		ID:          "anti-infantry",
		Name:        "Anti-Infantry (AIF)",
		Description: "This weapon uses half its CP when attacking units with the [mechanical] keyword.",
		Cost:        -3,
	},
	{
		ID:          "melee",
		Name:        "Melee",
		Description: "This weapon is a melee weapon and can only be used in close combat",
		Cost:        -1,
	},
	{
		ID:   "non-lethal",
		Name: "Non-Lethal",
		Description: "Before rolling for the attack, the unit declares the use of Non-Lethal. " +
			"Resolve the attack as normal. If the total wounds dealt would kill the target, " +
			"the target is instead knocked unconscious.",
		Cost: 1,
	},
	{
		ID:          "savage-1",
		Name:        "Savage(1)",
		Description: "Increase the weapon's critical range by 1.",
		Cost:        1,
	},
	{
		ID:          "savage-2",
		Name:        "Savage(2)",
		Description: "Increase the weapon's critical range by 2.",
		Cost:        2,
	},
	{
		ID:          "savage-3",
		Name:        "Savage(3)",
		Description: "Increase the weapon's critical range by 3.",
		Cost:        3,
	},
	{
		ID:          "parry",
		Name:        "Parry",
		Description: "When using this weapon, gain +1 competency when defending reactively in melee",
		Cost:        3,
	},
	{
		ID:   "reach",
		Name: "Reach",
		Description: "This weapon can attack units within 2in instead of requiring base to " +
			"base contact",
		Cost: 1,
	},
	{
		ID:          "brutal",
		Name:        "Brutal",
		Description: "Gain +1 CP on melee, but suffer -1 competency in melee",
		Cost:        2,
	},
	{
		ID:   "colossal",
		Name: "Colossal",
		Description: "Gain +1 CP in melee, but the unit is unable to take reactions using " +
			"this weapon",
		Cost: 2,
	},
	{
		ID:   "charge",
		Name: "Charge",
		Description: "Gain +1 CP when this weapon is used in melee immediately after the unit " +
			"performs a Move action.",
		Cost: 3,
	},
	{
		ID:          "burn",
		Name:        "Burn",
		Description: "Applies a Burn Token on the targeted unit.",
		Cost:        3,
	},
	{
		ID:          "poison",
		Name:        "Posion",
		Description: "Applies a poison token on the targeted unit",
		Cost:        3,
	},
	{
		ID:   "spray-2",
		Name: "Spray(2)",
		Description: "This weapon can split its CP across up to 2 targets within range. CP is " +
			"allocated before rolling any attacks.",
		Cost: 1,
	},
	{
		ID:   "spray-3",
		Name: "Spray(3)",
		Description: "This weapon can split its CP across up to 3 targets within range. CP is " +
			"allocated before rolling any attacks.",
		Cost: 2,
	},
	{
		ID:   "spray-4",
		Name: "Spray(4)",
		Description: "This weapon can split its CP across up to 4 targets within range. CP is " +
			"allocated before rolling any attacks.",
		Cost: 3,
	},
	{
		ID:          "two-handed",
		Name:        "Two Handed",
		Description: "This weapon takes up two weapon slots",
		Cost:        -2,
	},
	{
		ID:   "riposte",
		Name: "Riposte",
		Description: "This weapon allows for a single free attack against a melee attacker " +
			"that deals no damage.",
		Cost: 6,
	},
	{
		ID:   "hooked",
		Name: "Hooked",
		Description: "If this weapon hits, the target must pass a Resilience check or be " +
			"repositioned 2 inches.",
		Cost: 3,
	},
	{
		ID:          "shockwave",
		Name:        "Shockwave",
		Description: "On a successful hit, all other melee combatants take a 1/2 weapon CP hit",
		Cost:        3,
	},
	{
		ID:          "syphon",
		Name:        "Syphon",
		Description: "If this weapon kills an enemy, the wielder regains 1 wound",
		Cost:        6,
	},
	{
		ID:          "swift",
		Name:        "Swift",
		Description: "After attacking, this weapon allows the wielder to move again.",
		Cost:        3,
	},
	{
		ID:   "returning",
		Name: "Returning",
		Description: "This melee weapon is able to be thrown 8in. Resolve the attack as a " +
			"melee attack. The weapon returns back to the user.",
		Cost: 3,
	},
	{
		ID:          "purge",
		Name:        "Purge",
		Description: "Ignores armor when attacking enemies with the Eldritch keyword.",
		Cost:        6,
	},
	{
		ID:          "smite",
		Name:        "Smite",
		Description: "Gain +1 CP when targeting units with the Eldritch keyword",
		Cost:        3,
	},
	{
		ID:          "vorpal",
		Name:        "Vorpal",
		Description: "Ignores all armor when attacking",
		Cost:        9,
	},
	{
		ID:          "shove",
		Name:        "Shove",
		Description: "After dealing damage, push the targeted unit back 2in",
		Cost:        1,
	},
	{
		ID:   "bleed",
		Name: "Bleed",
		Description: "When this weapon deals damage, the target suffers 1 damage at the start " +
			"of their next activation unless they take an action to stop the bleeding.",
		Cost: 3,
	},
	{
		ID:   "cleave",
		Name: "Cleave",
		Description: "If this weapon kills a unit, the attacker may make a free melee attack " +
			"on another adjacent target with half CP",
		Cost: 3,
	},
	{
		ID:          "defensive",
		Name:        "Defensive",
		Description: "If the wielder has not moved, gain +1 armor in melee",
		Cost:        3,
	},
	{
		ID:          "ritual",
		Name:        "Ritual",
		Description: "When this weapon deals damage, gain +1 ritual token",
		Cost:        1,
	},
	{
		ID:          "knockback",
		Name:        "Knockback",
		Description: "On a hit, the target is pushed back 2 inches.",
		Cost:        1,
	},
	{
		ID:   "backstab-1",
		Name: "Backstab(1)",
		Description: "When attacking in the back arc of a unit, this weapon gains ignores 1 " +
			"point of armor",
		Cost: 3,
	},
	{
		ID:   "backstab-2",
		Name: "Backstab(2)",
		Description: "When attacking in the back arc of a unit, this weapon gains ignores 2 " +
			"point of armor",
		Cost: 6,
	},
	{
		ID:   "backstab-3",
		Name: "Backstab(3)",
		Description: "When attacking in the back arc of a unit, this weapon gains ignores 3 " +
			"point of armor",
		Cost: 9,
	},
	{
		ID:   "carnage",
		Name: "Carnage",
		Description: "If this weapon kills a unit, all enemy units within 6 inches must make " +
			"a Willpower check. On failure, they drop 1 Morale Level.",
		Cost: 1,
	},
	{
		ID:   "terror-1",
		Name: "Terror (1)",
		Description: "When this weapon hits, the target suffers -1 to their next Morale Check " +
			"(stacks up to -3). Does not cause an immediate Willpower test, but makes the " +
			"next one harder to pass.",
		Cost: 1,
	},
	{
		ID:   "terror-2",
		Name: "Terror (2)",
		Description: "When this weapon hits, the target suffers -2 to their next Morale Check " +
			"(stacks up to -3). Does not cause an immediate Willpower test, but makes the " +
			"next one harder to pass.",
		Cost: 2,
	},
	{
		ID:   "terror-3",
		Name: "Terror (3)",
		Description: "When this weapon hits, the target suffers -3 to their next Morale Check " +
			"(stacks up to -3). Does not cause an immediate Willpower test, but makes the " +
			"next one harder to pass.",
		Cost: 3,
	},
	{
		ID:   "panic",
		Name: "Panic",
		Description: "If this weapon causes a unit to drop to Broken, that unit immediately " +
			"moves its full movement away from the attacker instead of just seeking cover.",
		Cost: 6,
	},
}
