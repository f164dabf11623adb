// Package roster implements the roster orchestrator
package roster

import (
	"context"
	"log/slog"

	"github.com/warbandforge/warband-api/internal/catalog"
	"github.com/warbandforge/warband-api/internal/codec"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
	"github.com/warbandforge/warband-api/internal/pkg/idgen"
	warbandrepo "github.com/warbandforge/warband-api/internal/repositories/warband"
	"github.com/warbandforge/warband-api/internal/rules"
	"github.com/warbandforge/warband-api/internal/services/roster"
)

// Config holds the dependencies for the roster orchestrator
type Config struct {
	Repo    warbandrepo.Repository
	Catalog catalog.Provider
	Rules   *rules.Ruleset
	Codec   *codec.Codec
	IDGen   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repo == nil {
		vb.RequiredField("Repo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Codec == nil {
		vb.RequiredField("Codec")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Orchestrator implements the roster.Service interface
type Orchestrator struct {
	repo  warbandrepo.Repository
	cat   catalog.Provider
	rules *rules.Ruleset
	codec *codec.Codec
	idgen idgen.Generator
}

// New creates a new roster orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		repo:  cfg.Repo,
		cat:   cfg.Catalog,
		rules: cfg.Rules,
		codec: cfg.Codec,
		idgen: cfg.IDGen,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ roster.Service = (*Orchestrator)(nil)

// Warband lifecycle

// CreateWarband creates an empty warband for a faction
func (o *Orchestrator) CreateWarband(ctx context.Context, input *roster.CreateWarbandInput) (*roster.CreateWarbandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("factionID", input.FactionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, ok := o.cat.FactionByID(input.FactionID); !ok {
		return nil, errors.InvalidArgumentf("unknown faction %s", input.FactionID)
	}

	band := &wb.Warband{
		ID:        o.idgen.Generate(),
		Name:      input.Name,
		FactionID: input.FactionID,
	}

	slog.DebugContext(ctx, "created warband",
		"warband_id", band.ID,
		"faction_id", band.FactionID)

	return &roster.CreateWarbandOutput{Warband: band}, nil
}

// Build session

// SelectArchetype clones a faction's archetype template under a fresh unit id
func (o *Orchestrator) SelectArchetype(ctx context.Context, input *roster.SelectArchetypeInput) (*roster.SelectArchetypeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.UnitType.Valid() {
		return nil, errors.InvalidArgumentf("unknown unit type %q", input.UnitType)
	}

	tpl, ok := o.cat.Template(input.FactionID, input.UnitType)
	if !ok {
		return nil, errors.NotFoundf("faction %s has no %s archetype", input.FactionID, input.UnitType)
	}

	unit := tpl.Clone()
	unit.ID = o.idgen.Generate()

	return &roster.SelectArchetypeOutput{Unit: &unit}, nil
}

// ListAvailableWeapons lists the weapons a unit type may take, priced for the faction
func (o *Orchestrator) ListAvailableWeapons(ctx context.Context, input *roster.ListAvailableInput) (*roster.ListAvailableWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	all := o.cat.Weapons()
	priced := make([]roster.PricedWeapon, 0, len(all))
	for _, w := range all {
		if !o.rules.WeaponAllowed(w, input.UnitType, input.FactionID) {
			continue
		}
		cost := o.rules.WeaponCost(input.FactionID, w)
		priced = append(priced, roster.PricedWeapon{
			Weapon: w,
			Cost:   cost,
			Delta:  cost - w.Cost,
		})
	}

	return &roster.ListAvailableWeaponsOutput{Weapons: priced}, nil
}

// ListAvailableArmor lists the armor a unit type may take, priced for the faction
func (o *Orchestrator) ListAvailableArmor(ctx context.Context, input *roster.ListAvailableInput) (*roster.ListAvailableArmorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	available := wb.FilterAvailable(o.cat.Armor(), input.UnitType)
	priced := make([]roster.PricedArmor, 0, len(available))
	for _, a := range available {
		cost := o.rules.ArmorCost(input.FactionID, a)
		priced = append(priced, roster.PricedArmor{
			Armor: a,
			Cost:  cost,
			Delta: cost - a.Cost,
		})
	}

	return &roster.ListAvailableArmorOutput{Armor: priced}, nil
}

// ListAvailableEquipment lists the equipment a unit type may take, priced for the faction
func (o *Orchestrator) ListAvailableEquipment(ctx context.Context, input *roster.ListAvailableInput) (*roster.ListAvailableEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	available := wb.FilterAvailable(o.cat.Equipment(), input.UnitType)
	priced := make([]roster.PricedEquipment, 0, len(available))
	for _, e := range available {
		cost := o.rules.EquipmentCost(input.FactionID, e)
		priced = append(priced, roster.PricedEquipment{
			Equipment: e,
			Cost:      cost,
			Delta:     cost - e.Cost,
		})
	}

	return &roster.ListAvailableEquipmentOutput{Equipment: priced}, nil
}

// ListAvailableSkills lists the skills a unit type may take, priced for the faction
func (o *Orchestrator) ListAvailableSkills(ctx context.Context, input *roster.ListAvailableInput) (*roster.ListAvailableSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	available := wb.FilterAvailable(o.cat.Skills(), input.UnitType)
	priced := make([]roster.PricedSkill, 0, len(available))
	for _, s := range available {
		cost := o.rules.SkillCost(input.FactionID, s)
		priced = append(priced, roster.PricedSkill{
			Skill: s,
			Cost:  cost,
			Delta: cost - s.Cost,
		})
	}

	return &roster.ListAvailableSkillsOutput{Skills: priced}, nil
}

// AttachItem attaches a catalog item to a unit
func (o *Orchestrator) AttachItem(ctx context.Context, input *roster.AttachItemInput) (*roster.AttachItemOutput, error) {
	if input == nil || input.Unit == nil {
		return nil, errors.InvalidArgument("unit is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("itemID is required")
	}

	var (
		updated wb.Unit
		err     error
	)

	switch input.Kind {
	case roster.ItemKindWeapon:
		w, ok := o.cat.WeaponByID(input.ItemID)
		if !ok {
			return nil, errors.NotFoundf("weapon %s not found", input.ItemID)
		}
		if !o.rules.WeaponAllowed(w, input.Unit.UnitType, input.Unit.FactionID) {
			return nil, errors.FailedPreconditionf("weapon %s is not available to %s units", w.ID, input.Unit.UnitType)
		}
		updated, err = o.rules.TryAttachWeapon(*input.Unit, w)
	case roster.ItemKindArmor:
		a, ok := o.cat.ArmorByID(input.ItemID)
		if !ok {
			return nil, errors.NotFoundf("armor %s not found", input.ItemID)
		}
		if !wb.AvailableTo(a, input.Unit.UnitType) {
			return nil, errors.FailedPreconditionf("armor %s is not available to %s units", a.ID, input.Unit.UnitType)
		}
		updated, err = o.rules.TryAttachArmor(*input.Unit, a)
	case roster.ItemKindEquipment:
		e, ok := o.cat.EquipmentByID(input.ItemID)
		if !ok {
			return nil, errors.NotFoundf("equipment %s not found", input.ItemID)
		}
		if !wb.AvailableTo(e, input.Unit.UnitType) {
			return nil, errors.FailedPreconditionf("equipment %s is not available to %s units", e.ID, input.Unit.UnitType)
		}
		updated, err = o.rules.TryAttachEquipment(*input.Unit, e)
	case roster.ItemKindSkill:
		s, ok := o.cat.SkillByID(input.ItemID)
		if !ok {
			return nil, errors.NotFoundf("skill %s not found", input.ItemID)
		}
		if !wb.AvailableTo(s, input.Unit.UnitType) {
			return nil, errors.FailedPreconditionf("skill %s is not available to %s units", s.ID, input.Unit.UnitType)
		}
		updated, err = o.rules.TryAttachSkill(*input.Unit, s)
	default:
		return nil, errors.InvalidArgumentf("unknown item kind %q", input.Kind)
	}

	if err != nil {
		return nil, err
	}
	return &roster.AttachItemOutput{Unit: &updated}, nil
}

// DetachItem removes an item from a unit. Detaching an item the unit does
// not carry is a no-op.
func (o *Orchestrator) DetachItem(ctx context.Context, input *roster.DetachItemInput) (*roster.DetachItemOutput, error) {
	if input == nil || input.Unit == nil {
		return nil, errors.InvalidArgument("unit is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("itemID is required")
	}

	var updated wb.Unit
	switch input.Kind {
	case roster.ItemKindWeapon:
		updated = o.rules.DetachWeapon(*input.Unit, input.ItemID)
	case roster.ItemKindArmor:
		updated = o.rules.DetachArmor(*input.Unit, input.ItemID)
	case roster.ItemKindEquipment:
		updated = o.rules.DetachEquipment(*input.Unit, input.ItemID)
	case roster.ItemKindSkill:
		updated = o.rules.DetachSkill(*input.Unit, input.ItemID)
	default:
		return nil, errors.InvalidArgumentf("unknown item kind %q", input.Kind)
	}

	return &roster.DetachItemOutput{Unit: &updated}, nil
}

// Warband composition

// CommitUnit adds a finished unit to the warband
func (o *Orchestrator) CommitUnit(ctx context.Context, input *roster.CommitUnitInput) (*roster.CommitUnitOutput, error) {
	if input == nil || input.Warband == nil || input.Unit == nil {
		return nil, errors.InvalidArgument("warband and unit are required")
	}

	updated, err := rules.CommitUnit(*input.Warband, *input.Unit)
	if err != nil {
		return nil, err
	}
	return &roster.CommitUnitOutput{Warband: &updated}, nil
}

// RemoveUnit removes a unit from the warband. Unknown unit ids are a no-op.
func (o *Orchestrator) RemoveUnit(ctx context.Context, input *roster.RemoveUnitInput) (*roster.RemoveUnitOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}

	updated := rules.RemoveUnit(*input.Warband, input.UnitID)
	return &roster.RemoveUnitOutput{Warband: &updated}, nil
}

// ReplaceUnit swaps a committed unit for an edited version with the same id
func (o *Orchestrator) ReplaceUnit(ctx context.Context, input *roster.ReplaceUnitInput) (*roster.ReplaceUnitOutput, error) {
	if input == nil || input.Warband == nil || input.Unit == nil {
		return nil, errors.InvalidArgument("warband and unit are required")
	}

	updated, err := rules.ReplaceUnit(*input.Warband, *input.Unit)
	if err != nil {
		return nil, err
	}
	return &roster.ReplaceUnitOutput{Warband: &updated}, nil
}

// Sharing

// EncodeWarband produces a shareable code for the warband
func (o *Orchestrator) EncodeWarband(ctx context.Context, input *roster.EncodeWarbandInput) (*roster.EncodeWarbandOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}

	code, err := o.codec.Encode(*input.Warband)
	if err != nil {
		return nil, err
	}
	return &roster.EncodeWarbandOutput{Code: code}, nil
}

// DecodeWarband imports a warband from a share code
func (o *Orchestrator) DecodeWarband(ctx context.Context, input *roster.DecodeWarbandInput) (*roster.DecodeWarbandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	band, err := o.codec.Decode(input.Code)
	if err != nil {
		return nil, err
	}
	return &roster.DecodeWarbandOutput{Warband: &band}, nil
}

// Saved collection

// SaveWarband upserts a warband into the saved collection
func (o *Orchestrator) SaveWarband(ctx context.Context, input *roster.SaveWarbandInput) (*roster.SaveWarbandOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}
	if input.Warband.ID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	updateOut, err := o.repo.Update(ctx, warbandrepo.UpdateInput{Warband: input.Warband})
	if err == nil {
		return &roster.SaveWarbandOutput{Record: updateOut.Record}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	createOut, err := o.repo.Create(ctx, warbandrepo.CreateInput{Warband: input.Warband})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "saved new warband",
		"warband_id", input.Warband.ID)

	return &roster.SaveWarbandOutput{Record: createOut.Record}, nil
}

// LoadWarband retrieves a saved warband by id
func (o *Orchestrator) LoadWarband(ctx context.Context, input *roster.LoadWarbandInput) (*roster.LoadWarbandOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	output, err := o.repo.Get(ctx, warbandrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	return &roster.LoadWarbandOutput{Record: output.Record}, nil
}

// ListWarbands lists the saved collection, optionally narrowed to one faction
func (o *Orchestrator) ListWarbands(ctx context.Context, input *roster.ListWarbandsInput) (*roster.ListWarbandsOutput, error) {
	if input == nil {
		input = &roster.ListWarbandsInput{}
	}

	output, err := o.repo.List(ctx, warbandrepo.ListInput{FactionID: input.FactionID})
	if err != nil {
		return nil, err
	}
	return &roster.ListWarbandsOutput{Records: output.Records}, nil
}

// DeleteWarband removes a saved warband
func (o *Orchestrator) DeleteWarband(ctx context.Context, input *roster.DeleteWarbandInput) (*roster.DeleteWarbandOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("warband ID is required")
	}

	if _, err := o.repo.Delete(ctx, warbandrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}
	return &roster.DeleteWarbandOutput{}, nil
}

// Play mode

// StartTracker seeds a play-mode tracker from the warband's units
func (o *Orchestrator) StartTracker(ctx context.Context, input *roster.StartTrackerInput) (*roster.TrackerOutput, error) {
	if input == nil || input.Warband == nil {
		return nil, errors.InvalidArgument("warband is required")
	}

	return &roster.TrackerOutput{Tracker: rules.NewTracker(*input.Warband)}, nil
}

// SpendVigor spends vigor for one unit. Unknown units are a no-op.
func (o *Orchestrator) SpendVigor(ctx context.Context, input *roster.SpendVigorInput) (*roster.TrackerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &roster.TrackerOutput{Tracker: input.Tracker.SpendVigor(input.UnitID, input.Amount)}, nil
}

// ChangeWounds adjusts a unit's current wounds. Unknown units are a no-op.
func (o *Orchestrator) ChangeWounds(ctx context.Context, input *roster.ChangeWoundsInput) (*roster.TrackerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &roster.TrackerOutput{Tracker: input.Tracker.ChangeWounds(input.UnitID, input.Delta)}, nil
}

// AdvanceTurn ends the turn, restoring every unit's vigor
func (o *Orchestrator) AdvanceTurn(ctx context.Context, input *roster.AdvanceTurnInput) (*roster.TrackerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &roster.TrackerOutput{Tracker: input.Tracker.AdvanceTurn()}, nil
}

// ResetTracker restores the whole session to turn 1 with full pools
func (o *Orchestrator) ResetTracker(ctx context.Context, input *roster.ResetTrackerInput) (*roster.TrackerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &roster.TrackerOutput{Tracker: input.Tracker.Reset()}, nil
}
