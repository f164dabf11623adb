package codec_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/warbandforge/warband-api/internal/catalog"
	"github.com/warbandforge/warband-api/internal/codec"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
	"github.com/warbandforge/warband-api/internal/pkg/idgen"
	"github.com/warbandforge/warband-api/internal/rules"
)

type CodecTestSuite struct {
	suite.Suite
	catalog catalog.Provider
	rules   *rules.Ruleset
	codec   *codec.Codec
}

func (s *CodecTestSuite) SetupTest() {
	s.catalog = catalog.New()

	var err error
	s.rules, err = rules.New(&rules.Config{Catalog: s.catalog})
	s.Require().NoError(err)

	s.codec, err = codec.New(&codec.Config{
		Catalog: s.catalog,
		IDGen:   idgen.NewSequential("decoded"),
	})
	s.Require().NoError(err)
}

// buildWarband assembles a two-unit church warband from catalog items.
func (s *CodecTestSuite) buildWarband() wb.Warband {
	trooper := s.selectTemplate(wb.UnitTypeLineTrooper, "u1")
	boltRifle, _ := s.catalog.WeaponByID("bolt-rifle")
	light, _ := s.catalog.ArmorByID("light-armor")
	frag, _ := s.catalog.EquipmentByID("frag-grenade")

	var err error
	trooper, err = s.rules.TryAttachWeapon(trooper, boltRifle)
	s.Require().NoError(err)
	trooper, err = s.rules.TryAttachArmor(trooper, light)
	s.Require().NoError(err)
	trooper, err = s.rules.TryAttachEquipment(trooper, frag)
	s.Require().NoError(err)

	marksman := s.selectTemplate(wb.UnitTypeMarksmen, "u2")
	longRifle, _ := s.catalog.WeaponByID("long-rifle")
	precision, _ := s.catalog.SkillByID("precision")

	marksman, err = s.rules.TryAttachWeapon(marksman, longRifle)
	s.Require().NoError(err)
	marksman, err = s.rules.TryAttachSkill(marksman, precision)
	s.Require().NoError(err)

	w := wb.Warband{
		ID:        "original-warband",
		Name:      "Church of the Martyr Warband",
		FactionID: catalog.FactionChurchOfTheMartyr,
	}
	w, err = rules.CommitUnit(w, trooper)
	s.Require().NoError(err)
	w, err = rules.CommitUnit(w, marksman)
	s.Require().NoError(err)
	return w
}

func (s *CodecTestSuite) selectTemplate(unitType wb.UnitType, id string) wb.Unit {
	tmpl, ok := s.catalog.Template(catalog.FactionChurchOfTheMartyr, unitType)
	s.Require().True(ok)
	unit := tmpl.Clone()
	unit.ID = id
	return unit
}

// normalize blanks the ids the codec is expected to remint.
func normalize(w wb.Warband) wb.Warband {
	w = w.Clone()
	w.ID = ""
	for i := range w.Units {
		w.Units[i].ID = ""
	}
	return w
}

func (s *CodecTestSuite) TestRoundTripTwoUnitWarband() {
	original := s.buildWarband()

	code, err := s.codec.Encode(original)
	s.Require().NoError(err)

	decoded, err := s.codec.Decode(code)
	s.Require().NoError(err)

	s.Equal(normalize(original), normalize(decoded))
	s.Equal(original.TotalCost, decoded.TotalCost)
}

func (s *CodecTestSuite) TestDecodeMintsFreshIDs() {
	code, err := s.codec.Encode(s.buildWarband())
	s.Require().NoError(err)

	first, err := s.codec.Decode(code)
	s.Require().NoError(err)
	second, err := s.codec.Decode(code)
	s.Require().NoError(err)

	s.NotEqual("original-warband", first.ID)
	s.NotEqual(first.ID, second.ID)
	s.NotEqual(first.Units[0].ID, second.Units[0].ID)
}

func (s *CodecTestSuite) TestDecodeRehydratesFromCatalog() {
	code, err := s.codec.Encode(s.buildWarband())
	s.Require().NoError(err)

	decoded, err := s.codec.Decode(code)
	s.Require().NoError(err)

	// Descriptions and restrictions are not on the wire; they come back
	// from the catalog.
	rifle := decoded.Units[0].Weapons[0]
	s.Equal("bolt-rifle", rifle.ID)
	s.NotEmpty(rifle.Description)
	s.NotEmpty(rifle.UnitRestriction)
	s.NotEmpty(rifle.WeaponKeywords[0].Description)
}

func (s *CodecTestSuite) TestDecodeUnknownItemFallsBackToStub() {
	original := s.buildWarband()
	original.Units[0].Weapons[0] = wb.Weapon{
		ID:          "prototype-railgun",
		Name:        "Prototype Railgun",
		Cost:        30,
		Description: "never shipped",
		CombatPower: 5,
		WeaponKeywords: []wb.WeaponKeyword{
			{ID: "ap-3", Name: "AP(3)", Cost: 9},
			{ID: "experimental", Name: "Experimental", Cost: 0},
		},
	}

	code, err := s.codec.Encode(original)
	s.Require().NoError(err)
	decoded, err := s.codec.Decode(code)
	s.Require().NoError(err)

	stub := decoded.Units[0].Weapons[0]
	s.Equal("prototype-railgun", stub.ID)
	s.Equal("Prototype Railgun", stub.Name)
	s.Equal(30, stub.Cost)
	s.Equal(5, stub.CombatPower)
	s.Empty(stub.Description)
	s.Empty(stub.UnitRestriction)
	s.Empty(stub.Categories)

	// Known keyword id rehydrates, unknown one stays a bare id.
	s.Equal("AP(3)", stub.WeaponKeywords[0].Name)
	s.Equal(wb.WeaponKeyword{ID: "experimental"}, stub.WeaponKeywords[1])
}

func (s *CodecTestSuite) TestDecodeRejectsMalformedInput() {
	cases := map[string]string{
		"empty":       "",
		"not base64":  "not%%base64!!",
		"not json":    base64.StdEncoding.EncodeToString([]byte("hello")),
		"wrong shape": base64.StdEncoding.EncodeToString([]byte(`{"v":1,"b":123}`)),
		"no version":  base64.StdEncoding.EncodeToString([]byte(`{"b":"W","c":"f","d":[]}`)),
		"bad version": base64.StdEncoding.EncodeToString([]byte(`{"v":2,"b":"W","c":"f","d":[]}`)),
		"no faction":  base64.StdEncoding.EncodeToString([]byte(`{"v":1,"b":"W","d":[]}`)),
	}

	for name, code := range cases {
		_, err := s.codec.Decode(code)
		s.Require().Error(err, name)
		s.True(errors.IsInvalidArgument(err), name)
		s.Equal("invalid warband code", errors.GetMessage(err), name)
	}
}

func (s *CodecTestSuite) TestDecodeTrimsWhitespace() {
	code, err := s.codec.Encode(s.buildWarband())
	s.Require().NoError(err)

	_, err = s.codec.Decode("  " + code + "\n")
	s.NoError(err)
}

func TestCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

// TestRoundTripProperty drives the codec with randomly assembled warbands.
func TestRoundTripProperty(t *testing.T) {
	provider := catalog.New()
	ruleset, err := rules.New(&rules.Config{Catalog: provider})
	if err != nil {
		t.Fatal(err)
	}
	c, err := codec.New(&codec.Config{
		Catalog: provider,
		IDGen:   idgen.NewSequential("prop"),
	})
	if err != nil {
		t.Fatal(err)
	}

	factions := provider.Factions()
	weapons := provider.Weapons()
	armor := provider.Armor()
	equipment := provider.Equipment()
	skills := provider.Skills()

	rapid.Check(t, func(t *rapid.T) {
		faction := factions[rapid.IntRange(0, len(factions)-1).Draw(t, "faction")]
		templates := provider.TemplatesForFaction(faction.ID)

		w := wb.Warband{
			ID:        "seed",
			Name:      faction.Name + " Warband",
			FactionID: faction.ID,
		}

		unitCount := rapid.IntRange(0, 4).Draw(t, "units")
		for i := 0; i < unitCount; i++ {
			tmpl := templates[rapid.IntRange(0, len(templates)-1).Draw(t, "template")]
			unit := tmpl.Clone()
			unit.ID = idgen.NewSequential("seed-unit").Generate()

			for n := rapid.IntRange(0, 2).Draw(t, "weapons"); n > 0; n-- {
				pick := weapons[rapid.IntRange(0, len(weapons)-1).Draw(t, "weapon")]
				if next, err := ruleset.TryAttachWeapon(unit, pick); err == nil {
					unit = next
				}
			}
			if rapid.Bool().Draw(t, "hasArmor") {
				pick := armor[rapid.IntRange(0, len(armor)-1).Draw(t, "armor")]
				if next, err := ruleset.TryAttachArmor(unit, pick); err == nil {
					unit = next
				}
			}
			for n := rapid.IntRange(0, 3).Draw(t, "equipment"); n > 0; n-- {
				pick := equipment[rapid.IntRange(0, len(equipment)-1).Draw(t, "item")]
				if next, err := ruleset.TryAttachEquipment(unit, pick); err == nil {
					unit = next
				}
			}
			for n := rapid.IntRange(0, 3).Draw(t, "skills"); n > 0; n-- {
				pick := skills[rapid.IntRange(0, len(skills)-1).Draw(t, "skill")]
				if next, err := ruleset.TryAttachSkill(unit, pick); err == nil {
					unit = next
				}
			}

			var err error
			w, err = rules.CommitUnit(w, unit)
			if err != nil {
				t.Fatal(err)
			}
		}

		code, err := c.Encode(w)
		if err != nil {
			t.Fatal(err)
		}
		decoded, err := c.Decode(code)
		if err != nil {
			t.Fatal(err)
		}

		got := normalize(decoded)
		want := normalize(w)
		if got.TotalCost != want.TotalCost || len(got.Units) != len(want.Units) {
			t.Fatalf("round trip changed shape: %+v != %+v", got, want)
		}
		for i := range want.Units {
			if got.Units[i].TotalCost != want.Units[i].TotalCost ||
				len(got.Units[i].Weapons) != len(want.Units[i].Weapons) ||
				len(got.Units[i].Skills) != len(want.Units[i].Skills) {
				t.Fatalf("unit %d changed in round trip", i)
			}
		}
	})
}
