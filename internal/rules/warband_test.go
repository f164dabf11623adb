package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/warbandforge/warband-api/internal/catalog"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
	"github.com/warbandforge/warband-api/internal/rules"
)

type WarbandRulesTestSuite struct {
	suite.Suite
	catalog catalog.Provider
}

func (s *WarbandRulesTestSuite) SetupTest() {
	s.catalog = catalog.New()
}

func (s *WarbandRulesTestSuite) unit(id string, factionID string, cost int) wb.Unit {
	return wb.Unit{
		ID:        id,
		Name:      "unit " + id,
		FactionID: factionID,
		UnitType:  wb.UnitTypeLineTrooper,
		BaseCost:  cost,
		TotalCost: cost,
	}
}

func (s *WarbandRulesTestSuite) TestCommitUnit() {
	w := wb.Warband{ID: "w1", FactionID: catalog.FactionChurchOfTheMartyr}

	w, err := rules.CommitUnit(w, s.unit("u1", catalog.FactionChurchOfTheMartyr, 10))
	s.Require().NoError(err)
	w, err = rules.CommitUnit(w, s.unit("u2", catalog.FactionChurchOfTheMartyr, 14))
	s.Require().NoError(err)

	s.Len(w.Units, 2)
	s.Equal(24, w.TotalCost)
}

func (s *WarbandRulesTestSuite) TestCommitUnitFactionMismatch() {
	w := wb.Warband{ID: "w1", FactionID: catalog.FactionChurchOfTheMartyr}

	_, err := rules.CommitUnit(w, s.unit("u1", catalog.FactionXiuhcoatl, 10))
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *WarbandRulesTestSuite) TestRemoveUnit() {
	w := wb.Warband{ID: "w1", FactionID: catalog.FactionChurchOfTheMartyr}
	w, err := rules.CommitUnit(w, s.unit("u1", catalog.FactionChurchOfTheMartyr, 10))
	s.Require().NoError(err)
	w, err = rules.CommitUnit(w, s.unit("u2", catalog.FactionChurchOfTheMartyr, 14))
	s.Require().NoError(err)

	w = rules.RemoveUnit(w, "u1")
	s.Len(w.Units, 1)
	s.Equal(14, w.TotalCost)

	// Unknown id leaves the warband untouched.
	w = rules.RemoveUnit(w, "u9")
	s.Len(w.Units, 1)
	s.Equal(14, w.TotalCost)
}

func (s *WarbandRulesTestSuite) TestReplaceUnitAdjustsTotalByDelta() {
	w := wb.Warband{ID: "w1", FactionID: catalog.FactionChurchOfTheMartyr}
	w, err := rules.CommitUnit(w, s.unit("u1", catalog.FactionChurchOfTheMartyr, 10))
	s.Require().NoError(err)

	edited := s.unit("u1", catalog.FactionChurchOfTheMartyr, 10)
	edited.TotalCost = 18

	w, err = rules.ReplaceUnit(w, edited)
	s.Require().NoError(err)
	s.Equal(18, w.TotalCost)
	s.Equal(18, w.Units[0].TotalCost)
}

func (s *WarbandRulesTestSuite) TestReplaceUnknownUnitFails() {
	w := wb.Warband{ID: "w1", FactionID: catalog.FactionChurchOfTheMartyr}

	_, err := rules.ReplaceUnit(w, s.unit("ghost", catalog.FactionChurchOfTheMartyr, 5))
	s.True(errors.IsFailedPrecondition(err))
}

func (s *WarbandRulesTestSuite) TestOperationsDoNotAliasInput() {
	w := wb.Warband{ID: "w1", FactionID: catalog.FactionChurchOfTheMartyr}
	w, err := rules.CommitUnit(w, s.unit("u1", catalog.FactionChurchOfTheMartyr, 10))
	s.Require().NoError(err)

	removed := rules.RemoveUnit(w, "u1")
	s.Len(w.Units, 1)
	s.Empty(removed.Units)
}

func TestWarbandRulesTestSuite(t *testing.T) {
	suite.Run(t, new(WarbandRulesTestSuite))
}
