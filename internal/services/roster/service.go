// Package roster defines the interface for warband building, sharing,
// collection, and play-mode operations
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/warbandforge/warband-api/internal/services/roster Service

import (
	"context"

	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/repositories/warband"
	"github.com/warbandforge/warband-api/internal/rules"
)

// ItemKind selects which attachment list an item belongs to.
type ItemKind string

// The attachment kinds.
const (
	ItemKindWeapon    ItemKind = "weapon"
	ItemKindArmor     ItemKind = "armor"
	ItemKindEquipment ItemKind = "equipment"
	ItemKindSkill     ItemKind = "skill"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindWeapon, ItemKindArmor, ItemKindEquipment, ItemKindSkill:
		return true
	}
	return false
}

// Service defines the interface for roster operations
type Service interface {
	// Warband lifecycle
	CreateWarband(ctx context.Context, input *CreateWarbandInput) (*CreateWarbandOutput, error)

	// Build session
	SelectArchetype(ctx context.Context, input *SelectArchetypeInput) (*SelectArchetypeOutput, error)
	ListAvailableWeapons(ctx context.Context, input *ListAvailableInput) (*ListAvailableWeaponsOutput, error)
	ListAvailableArmor(ctx context.Context, input *ListAvailableInput) (*ListAvailableArmorOutput, error)
	ListAvailableEquipment(ctx context.Context, input *ListAvailableInput) (*ListAvailableEquipmentOutput, error)
	ListAvailableSkills(ctx context.Context, input *ListAvailableInput) (*ListAvailableSkillsOutput, error)
	AttachItem(ctx context.Context, input *AttachItemInput) (*AttachItemOutput, error)
	DetachItem(ctx context.Context, input *DetachItemInput) (*DetachItemOutput, error)

	// Warband composition
	CommitUnit(ctx context.Context, input *CommitUnitInput) (*CommitUnitOutput, error)
	RemoveUnit(ctx context.Context, input *RemoveUnitInput) (*RemoveUnitOutput, error)
	ReplaceUnit(ctx context.Context, input *ReplaceUnitInput) (*ReplaceUnitOutput, error)

	// Sharing
	EncodeWarband(ctx context.Context, input *EncodeWarbandInput) (*EncodeWarbandOutput, error)
	DecodeWarband(ctx context.Context, input *DecodeWarbandInput) (*DecodeWarbandOutput, error)

	// Saved collection
	SaveWarband(ctx context.Context, input *SaveWarbandInput) (*SaveWarbandOutput, error)
	LoadWarband(ctx context.Context, input *LoadWarbandInput) (*LoadWarbandOutput, error)
	ListWarbands(ctx context.Context, input *ListWarbandsInput) (*ListWarbandsOutput, error)
	DeleteWarband(ctx context.Context, input *DeleteWarbandInput) (*DeleteWarbandOutput, error)

	// Play mode
	StartTracker(ctx context.Context, input *StartTrackerInput) (*TrackerOutput, error)
	SpendVigor(ctx context.Context, input *SpendVigorInput) (*TrackerOutput, error)
	ChangeWounds(ctx context.Context, input *ChangeWoundsInput) (*TrackerOutput, error)
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*TrackerOutput, error)
	ResetTracker(ctx context.Context, input *ResetTrackerInput) (*TrackerOutput, error)
}

// Warband lifecycle types

// CreateWarbandInput defines the request for creating an empty warband
type CreateWarbandInput struct {
	Name      string
	FactionID string
}

// CreateWarbandOutput defines the response for creating an empty warband
type CreateWarbandOutput struct {
	Warband *wb.Warband
}

// Build session types

// SelectArchetypeInput defines the request for starting a unit from a template
type SelectArchetypeInput struct {
	FactionID string
	UnitType  wb.UnitType
}

// SelectArchetypeOutput defines the response for starting a unit from a template
type SelectArchetypeOutput struct {
	Unit *wb.Unit
}

// ListAvailableInput defines the request for listing items a unit may take.
// Costs in the output are resolved for FactionID.
type ListAvailableInput struct {
	FactionID string
	UnitType  wb.UnitType
}

// PricedWeapon pairs a weapon with its faction-resolved cost
type PricedWeapon struct {
	Weapon wb.Weapon
	Cost   int
	// Delta is Cost minus the base cost
	Delta int
}

// PricedArmor pairs armor with its faction-resolved cost
type PricedArmor struct {
	Armor wb.Armor
	Cost  int
	Delta int
}

// PricedEquipment pairs equipment with its faction-resolved cost
type PricedEquipment struct {
	Equipment wb.Equipment
	Cost      int
	Delta     int
}

// PricedSkill pairs a skill with its faction-resolved cost
type PricedSkill struct {
	Skill wb.Skill
	Cost  int
	Delta int
}

// ListAvailableWeaponsOutput defines the response for listing available weapons
type ListAvailableWeaponsOutput struct {
	Weapons []PricedWeapon
}

// ListAvailableArmorOutput defines the response for listing available armor
type ListAvailableArmorOutput struct {
	Armor []PricedArmor
}

// ListAvailableEquipmentOutput defines the response for listing available equipment
type ListAvailableEquipmentOutput struct {
	Equipment []PricedEquipment
}

// ListAvailableSkillsOutput defines the response for listing available skills
type ListAvailableSkillsOutput struct {
	Skills []PricedSkill
}

// AttachItemInput defines the request for attaching a catalog item to a unit
type AttachItemInput struct {
	Unit   *wb.Unit
	Kind   ItemKind
	ItemID string
}

// AttachItemOutput defines the response for attaching a catalog item
type AttachItemOutput struct {
	Unit *wb.Unit
}

// DetachItemInput defines the request for detaching an item from a unit
type DetachItemInput struct {
	Unit   *wb.Unit
	Kind   ItemKind
	ItemID string
}

// DetachItemOutput defines the response for detaching an item
type DetachItemOutput struct {
	Unit *wb.Unit
}

// Warband composition types

// CommitUnitInput defines the request for adding a finished unit to a warband
type CommitUnitInput struct {
	Warband *wb.Warband
	Unit    *wb.Unit
}

// CommitUnitOutput defines the response for adding a unit
type CommitUnitOutput struct {
	Warband *wb.Warband
}

// RemoveUnitInput defines the request for removing a unit from a warband
type RemoveUnitInput struct {
	Warband *wb.Warband
	UnitID  string
}

// RemoveUnitOutput defines the response for removing a unit
type RemoveUnitOutput struct {
	Warband *wb.Warband
}

// ReplaceUnitInput defines the request for replacing a committed unit in place
type ReplaceUnitInput struct {
	Warband *wb.Warband
	Unit    *wb.Unit
}

// ReplaceUnitOutput defines the response for replacing a unit
type ReplaceUnitOutput struct {
	Warband *wb.Warband
}

// Sharing types

// EncodeWarbandInput defines the request for producing a share code
type EncodeWarbandInput struct {
	Warband *wb.Warband
}

// EncodeWarbandOutput defines the response for producing a share code
type EncodeWarbandOutput struct {
	Code string
}

// DecodeWarbandInput defines the request for importing a share code
type DecodeWarbandInput struct {
	Code string
}

// DecodeWarbandOutput defines the response for importing a share code
type DecodeWarbandOutput struct {
	Warband *wb.Warband
}

// Saved collection types

// SaveWarbandInput defines the request for saving a warband. Saving is an
// upsert: an existing warband with the same ID is replaced.
type SaveWarbandInput struct {
	Warband *wb.Warband
}

// SaveWarbandOutput defines the response for saving a warband
type SaveWarbandOutput struct {
	Record *warband.Record
}

// LoadWarbandInput defines the request for loading a saved warband
type LoadWarbandInput struct {
	ID string
}

// LoadWarbandOutput defines the response for loading a saved warband
type LoadWarbandOutput struct {
	Record *warband.Record
}

// ListWarbandsInput defines the request for listing saved warbands. An empty
// FactionID lists the whole collection.
type ListWarbandsInput struct {
	FactionID string
}

// ListWarbandsOutput defines the response for listing saved warbands
type ListWarbandsOutput struct {
	Records []*warband.Record
}

// DeleteWarbandInput defines the request for deleting a saved warband
type DeleteWarbandInput struct {
	ID string
}

// DeleteWarbandOutput defines the response for deleting a saved warband
type DeleteWarbandOutput struct{}

// Play mode types

// StartTrackerInput defines the request for starting a play session
type StartTrackerInput struct {
	Warband *wb.Warband
}

// TrackerOutput carries the tracker state after any play-mode operation
type TrackerOutput struct {
	Tracker rules.Tracker
}

// SpendVigorInput defines the request for spending a unit's vigor
type SpendVigorInput struct {
	Tracker rules.Tracker
	UnitID  string
	Amount  int
}

// ChangeWoundsInput defines the request for adjusting a unit's wounds
type ChangeWoundsInput struct {
	Tracker rules.Tracker
	UnitID  string
	Delta   int
}

// AdvanceTurnInput defines the request for ending the turn
type AdvanceTurnInput struct {
	Tracker rules.Tracker
}

// ResetTrackerInput defines the request for resetting a play session
type ResetTrackerInput struct {
	Tracker rules.Tracker
}
