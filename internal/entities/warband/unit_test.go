package warband_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/warbandforge/warband-api/internal/entities/warband"
)

type UnitTestSuite struct {
	suite.Suite
}

func TestUnitSuite(t *testing.T) {
	suite.Run(t, new(UnitTestSuite))
}

func (s *UnitTestSuite) TestMovementValue() {
	unit := warband.Unit{
		Armor: []warband.Armor{
			{ID: "heavy-armor", MovementPenalty: -2},
		},
	}

	s.Equal(-2, unit.MovementPenalty())
	s.Equal(4, unit.MovementValue())
}

func (s *UnitTestSuite) TestMovementValueNoArmor() {
	unit := warband.Unit{}
	s.Equal(0, unit.MovementPenalty())
	s.Equal(warband.BaseMovement, unit.MovementValue())
}

func (s *UnitTestSuite) TestCloneIsDeep() {
	unit := warband.Unit{
		ID:      "unit_1",
		Weapons: []warband.Weapon{{ID: "pistol"}},
		Skills:  []warband.Skill{{ID: "alert"}},
	}

	clone := unit.Clone()
	clone.Weapons[0].ID = "revolver"
	clone.Skills = append(clone.Skills, warband.Skill{ID: "stealth"})

	s.Equal("pistol", unit.Weapons[0].ID)
	s.Len(unit.Skills, 1)
}

func (s *UnitTestSuite) TestWarbandUnitByID() {
	w := warband.Warband{
		Units: []warband.Unit{{ID: "unit_1"}, {ID: "unit_2"}},
	}

	s.Require().NotNil(w.UnitByID("unit_2"))
	s.Equal("unit_2", w.UnitByID("unit_2").ID)
	s.Nil(w.UnitByID("unit_404"))
}

func (s *UnitTestSuite) TestUnitTypeValid() {
	s.True(warband.UnitTypeSkirmisher.Valid())
	s.False(warband.UnitType("Tank").Valid())
	s.Len(warband.UnitTypes(), 12)
}
