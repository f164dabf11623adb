package testutils

import (
	"github.com/warbandforge/warband-api/internal/catalog"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// Default ids used by test fixtures
const (
	TestWarbandID   = "warband-test-001"
	TestWarbandName = "The Penitent Host"
	TestUnitID      = "unit-test-001"
)

// CreateTestWarband creates a one-unit warband from real catalog data.
// The unit is the faction's line trooper archetype under a fixed id.
func CreateTestWarband(factionID string) *wb.Warband {
	cat := catalog.New()
	tpl, ok := cat.Template(factionID, wb.UnitTypeLineTrooper)
	if !ok {
		panic("testutils: no line trooper template for faction " + factionID)
	}

	unit := tpl.Clone()
	unit.ID = TestUnitID

	return &wb.Warband{
		ID:        TestWarbandID,
		Name:      TestWarbandName,
		FactionID: factionID,
		Units:     []wb.Unit{unit},
		TotalCost: unit.TotalCost,
	}
}

// CreateEmptyTestWarband creates a warband with no units.
func CreateEmptyTestWarband(factionID string) *wb.Warband {
	return &wb.Warband{
		ID:        TestWarbandID,
		Name:      TestWarbandName,
		FactionID: factionID,
	}
}
