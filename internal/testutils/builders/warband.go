// Package builders provides test data builders for creating test fixtures
package builders

import (
	"strconv"

	"github.com/warbandforge/warband-api/internal/catalog"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

// WarbandBuilder provides a fluent interface for building test Warband instances
type WarbandBuilder struct {
	cat     catalog.Provider
	warband *wb.Warband
	nextID  int
}

// NewWarbandBuilder creates a new builder with minimal defaults
func NewWarbandBuilder() *WarbandBuilder {
	return &WarbandBuilder{
		cat: catalog.New(),
		warband: &wb.Warband{
			ID:        "warband-test-123",
			Name:      "Test Warband",
			FactionID: catalog.FactionChurchOfTheMartyr,
		},
	}
}

// WithID sets the warband ID
func (b *WarbandBuilder) WithID(id string) *WarbandBuilder {
	b.warband.ID = id
	return b
}

// WithName sets the warband name
func (b *WarbandBuilder) WithName(name string) *WarbandBuilder {
	b.warband.Name = name
	return b
}

// WithFaction sets the faction. Call before WithUnit so templates resolve
// against the right faction.
func (b *WarbandBuilder) WithFaction(factionID string) *WarbandBuilder {
	b.warband.FactionID = factionID
	return b
}

// WithUnit appends a unit cloned from the faction's archetype template.
// Panics when the faction has no template for the unit type.
func (b *WarbandBuilder) WithUnit(unitType wb.UnitType) *WarbandBuilder {
	tpl, ok := b.cat.Template(b.warband.FactionID, unitType)
	if !ok {
		panic("builders: no template for " + b.warband.FactionID + "/" + string(unitType))
	}

	unit := tpl.Clone()
	b.nextID++
	unit.ID = "unit-test-" + strconv.Itoa(b.nextID)

	b.warband.Units = append(b.warband.Units, unit)
	b.warband.TotalCost += unit.TotalCost
	return b
}

// Build returns the built warband
func (b *WarbandBuilder) Build() *wb.Warband {
	return b.warband
}
