package warband

// SkillCategory tags a skill for faction cost modifiers. Categories never
// affect availability, only pricing.
type SkillCategory string

// The closed set of skill categories.
const (
	SkillCategoryStealth      SkillCategory = "stealth"
	SkillCategoryDefensive    SkillCategory = "defensive"
	SkillCategoryOffensive    SkillCategory = "offensive"
	SkillCategorySupport      SkillCategory = "support"
	SkillCategoryMovement     SkillCategory = "movement"
	SkillCategoryMelee        SkillCategory = "melee"
	SkillCategoryRanged       SkillCategory = "ranged"
	SkillCategoryMedical      SkillCategory = "medical"
	SkillCategoryFear         SkillCategory = "fear"
	SkillCategoryRitual       SkillCategory = "ritual"
	SkillCategoryMorale       SkillCategory = "morale"
	SkillCategoryCoordination SkillCategory = "coordination"
)

// EquipmentCategory tags weapons, armor, and equipment for faction cost
// modifiers. An item may carry several; modifiers sum across all of them.
type EquipmentCategory string

// The closed set of equipment categories.
const (
	EquipmentCategoryHeavyArmor   EquipmentCategory = "heavy-armor"
	EquipmentCategoryLightArmor   EquipmentCategory = "light-armor"
	EquipmentCategoryMediumArmor  EquipmentCategory = "medium-armor"
	EquipmentCategoryStealthGear  EquipmentCategory = "stealth-gear"
	EquipmentCategoryMedical      EquipmentCategory = "medical"
	EquipmentCategoryExplosive    EquipmentCategory = "explosive"
	EquipmentCategoryMeleeWeapon  EquipmentCategory = "melee-weapon"
	EquipmentCategoryRangedWeapon EquipmentCategory = "ranged-weapon"
	EquipmentCategoryHeavyWeapon  EquipmentCategory = "heavy-weapon"
	EquipmentCategorySupportGear  EquipmentCategory = "support-gear"
	EquipmentCategoryRitualGear   EquipmentCategory = "ritual-gear"
	EquipmentCategoryCloseCombat  EquipmentCategory = "close-combat"
	EquipmentCategoryLongRange    EquipmentCategory = "long-range"
	EquipmentCategoryAntiArmor    EquipmentCategory = "anti-armor"
)
