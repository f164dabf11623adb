package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/warbandforge/warband-api/internal/catalog"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

type ProviderTestSuite struct {
	suite.Suite
	provider catalog.Provider
}

func (s *ProviderTestSuite) SetupTest() {
	s.provider = catalog.New()
}

func (s *ProviderTestSuite) TestFactions() {
	factions := s.provider.Factions()
	s.Len(factions, 2)

	church, ok := s.provider.FactionByID(catalog.FactionChurchOfTheMartyr)
	s.True(ok)
	s.Equal("Church of the Martyr", church.Name)

	_, ok = s.provider.FactionByID("grand-duchy")
	s.False(ok)
}

func (s *ProviderTestSuite) TestModifierTablesCoverUnreleasedFactions() {
	for _, id := range []string{
		catalog.FactionChurchOfTheMartyr,
		catalog.FactionXiuhcoatl,
		catalog.FactionIronPact,
		catalog.FactionFreeCompanies,
	} {
		mod, ok := s.provider.ModifierForFaction(id)
		s.True(ok, "missing modifier table for %s", id)
		s.Equal(id, mod.FactionID)
	}
}

func (s *ProviderTestSuite) TestChurchModifierValues() {
	mod, ok := s.provider.ModifierForFaction(catalog.FactionChurchOfTheMartyr)
	s.Require().True(ok)

	s.Equal(4, mod.EquipmentModifiers[wb.EquipmentCategoryStealthGear])
	s.Equal(-3, mod.EquipmentModifiers[wb.EquipmentCategoryHeavyArmor])
	s.Equal(5, mod.SkillModifiers[wb.SkillCategoryRitual])
	s.Equal(-2, mod.SkillModifiers[wb.SkillCategoryDefensive])
}

func (s *ProviderTestSuite) TestWeaponLookup() {
	w, ok := s.provider.WeaponByID("bolt-rifle")
	s.Require().True(ok)
	s.Equal("Bolt Rifle", w.Name)
	s.Equal(8, w.Cost)
	s.Equal(3, w.CombatPower)
	s.Len(w.WeaponKeywords, 3)

	_, ok = s.provider.WeaponByID("plasma-caster")
	s.False(ok)
}

func (s *ProviderTestSuite) TestWeaponKeywordsResolve() {
	for _, w := range s.provider.Weapons() {
		for _, k := range w.WeaponKeywords {
			_, ok := s.provider.WeaponKeywordByID(k.ID)
			s.True(ok, "weapon %s carries unknown keyword %s", w.ID, k.ID)
		}
	}
}

func (s *ProviderTestSuite) TestParenthesizedKeywordsAttached() {
	// These keyword names carry parameters like AP(1) or a parenthesized
	// shorthand; make sure the port kept them on the weapons that list them.
	longRifle, ok := s.provider.WeaponByID("long-rifle")
	s.Require().True(ok)
	s.keywordPresent(longRifle, "ap-1")
	s.keywordPresent(longRifle, "anti-infantry")

	flamethrower, ok := s.provider.WeaponByID("flamethrower")
	s.Require().True(ok)
	s.keywordPresent(flamethrower, "template-cone")
	s.keywordPresent(flamethrower, "overheat-2")

	assaultPistol, ok := s.provider.WeaponByID("assault-pistol")
	s.Require().True(ok)
	s.keywordPresent(assaultPistol, "rapid-fire")
}

func (s *ProviderTestSuite) keywordPresent(w wb.Weapon, keywordID string) {
	s.T().Helper()
	for _, k := range w.WeaponKeywords {
		if k.ID == keywordID {
			return
		}
	}
	s.Failf("keyword missing", "weapon %s should carry %s", w.ID, keywordID)
}

func (s *ProviderTestSuite) TestFactionWeaponsRestrictedToPlayableFactions() {
	restricted := 0
	for _, w := range s.provider.Weapons() {
		for _, f := range w.FactionRestriction {
			restricted++
			_, ok := s.provider.FactionByID(f.ID)
			s.True(ok, "weapon %s restricted to unknown faction %s", w.ID, f.ID)
		}
	}
	s.Equal(9, restricted)
}

func (s *ProviderTestSuite) TestArmorTiers() {
	s.Len(s.provider.Armor(), 3)

	heavy, ok := s.provider.ArmorByID("heavy-armor")
	s.Require().True(ok)
	s.Equal(9, heavy.Cost)
	s.Equal(3, heavy.ArmorValue)
	s.Equal(-2, heavy.MovementPenalty)
	s.Empty(heavy.UnitRestriction)
}

func (s *ProviderTestSuite) TestEquipmentLookup() {
	s.Len(s.provider.Equipment(), 31)

	item, ok := s.provider.EquipmentByID("medics-satchel")
	s.Require().True(ok)
	s.Equal(6, item.Cost)
	s.Contains(item.Categories, wb.EquipmentCategoryMedical)
}

func (s *ProviderTestSuite) TestSkillsCarryCategories() {
	all := s.provider.Skills()
	s.Len(all, 41)
	for _, sk := range all {
		s.NotEmpty(sk.Categories, "skill %s has no categories", sk.ID)
	}

	horror, ok := s.provider.SkillByID("horror")
	s.Require().True(ok)
	s.Equal([]wb.SkillCategory{wb.SkillCategoryFear}, horror.Categories)
}

func (s *ProviderTestSuite) TestTemplates() {
	for _, f := range s.provider.Factions() {
		s.NotEmpty(s.provider.TemplatesForFaction(f.ID))
	}

	tmpl, ok := s.provider.Template(catalog.FactionXiuhcoatl, wb.UnitTypeSummoner)
	s.Require().True(ok)
	s.Equal("Coatl Summoner", tmpl.Name)
	s.Equal(tmpl.BaseCost, tmpl.TotalCost)

	_, ok = s.provider.Template(catalog.FactionChurchOfTheMartyr, wb.UnitTypeSummoner)
	s.False(ok)
}

func (s *ProviderTestSuite) TestTemplateDataIsConsistent() {
	for _, tmpl := range s.provider.Templates() {
		_, ok := s.provider.FactionByID(tmpl.FactionID)
		s.True(ok, "template %s references unknown faction", tmpl.ID)
		s.True(tmpl.UnitType.Valid(), "template %s has invalid unit type", tmpl.ID)

		s.GreaterOrEqual(tmpl.Wounds, 1, "template %s wounds", tmpl.ID)
		s.LessOrEqual(tmpl.Wounds, 4, "template %s wounds", tmpl.ID)
		s.GreaterOrEqual(tmpl.Vigor, 1, "template %s vigor", tmpl.ID)
		s.LessOrEqual(tmpl.Vigor, 4, "template %s vigor", tmpl.ID)
		s.GreaterOrEqual(tmpl.Resilience, 2, "template %s resilience", tmpl.ID)
		s.LessOrEqual(tmpl.Resilience, 5, "template %s resilience", tmpl.ID)
		s.GreaterOrEqual(tmpl.Willpower, 2, "template %s willpower", tmpl.ID)
		s.LessOrEqual(tmpl.Willpower, 5, "template %s willpower", tmpl.ID)

		for _, df := range tmpl.DefaultSkills {
			s.True(wb.AvailableTo(df, tmpl.UnitType),
				"template %s default skill %s not available to %s", tmpl.ID, df.ID, tmpl.UnitType)
		}
	}
}

func (s *ProviderTestSuite) TestListsAreDefensiveCopies() {
	first := s.provider.Weapons()
	first[0].Name = "mutated"

	again := s.provider.Weapons()
	s.NotEqual("mutated", again[0].Name)
}

func TestProviderTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderTestSuite))
}
