package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/warbandforge/warband-api/internal/catalog"
	"github.com/warbandforge/warband-api/internal/codec"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
	rosterorch "github.com/warbandforge/warband-api/internal/orchestrators/roster"
	"github.com/warbandforge/warband-api/internal/pkg/idgen"
	warbandrepo "github.com/warbandforge/warband-api/internal/repositories/warband"
	warbandmock "github.com/warbandforge/warband-api/internal/repositories/warband/mock"
	"github.com/warbandforge/warband-api/internal/rules"
	"github.com/warbandforge/warband-api/internal/services/roster"
	"github.com/warbandforge/warband-api/internal/testutils"
	"github.com/warbandforge/warband-api/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	svc     roster.Service
	cleanup func()
	ctx     context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	cat := catalog.New()
	gen := idgen.NewSequential("test-")

	ruleset, err := rules.New(&rules.Config{Catalog: cat})
	s.Require().NoError(err)

	cdc, err := codec.New(&codec.Config{Catalog: cat, IDGen: gen})
	s.Require().NoError(err)

	repo, err := warbandrepo.NewRedis(&warbandrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	svc, err := rosterorch.New(&rosterorch.Config{
		Repo:    repo,
		Catalog: cat,
		Rules:   ruleset,
		Codec:   cdc,
		IDGen:   gen,
	})
	s.Require().NoError(err)

	s.svc = svc
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *OrchestratorTestSuite) TestCreateWarband() {
	output, err := s.svc.CreateWarband(s.ctx, &roster.CreateWarbandInput{
		Name:      "The Penitent Host",
		FactionID: catalog.FactionChurchOfTheMartyr,
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Warband.ID)
	s.Equal("The Penitent Host", output.Warband.Name)
	s.Empty(output.Warband.Units)
	s.Zero(output.Warband.TotalCost)
}

func (s *OrchestratorTestSuite) TestCreateWarbandValidation() {
	_, err := s.svc.CreateWarband(s.ctx, &roster.CreateWarbandInput{FactionID: catalog.FactionChurchOfTheMartyr})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.svc.CreateWarband(s.ctx, &roster.CreateWarbandInput{Name: "Host", FactionID: "outlanders"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSelectArchetype() {
	first, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)
	s.Equal("Martyr Line Trooper", first.Unit.Name)
	s.NotEmpty(first.Unit.ID)
	s.Empty(first.Unit.Weapons)
	s.Equal(first.Unit.BaseCost, first.Unit.TotalCost)

	second, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)
	s.NotEqual(first.Unit.ID, second.Unit.ID)
}

func (s *OrchestratorTestSuite) TestSelectArchetypeMissing() {
	// Church fields no summoners
	_, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeSummoner,
	})
	s.True(errors.IsNotFound(err))

	_, err = s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitType("Warlord"),
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListAvailableWeapons() {
	output, err := s.svc.ListAvailableWeapons(s.ctx, &roster.ListAvailableInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeMarksmen,
	})
	s.Require().NoError(err)
	s.NotEmpty(output.Weapons)

	ids := make(map[string]roster.PricedWeapon, len(output.Weapons))
	for _, pw := range output.Weapons {
		ids[pw.Weapon.ID] = pw
	}
	s.Contains(ids, "long-rifle")
	s.NotContains(ids, "bayonet")

	// Relic weapons of other factions still list while faction
	// enforcement is off
	melee, err := s.svc.ListAvailableWeapons(s.ctx, &roster.ListAvailableInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeMeleeSpecialist,
	})
	s.Require().NoError(err)
	meleeIDs := make(map[string]struct{}, len(melee.Weapons))
	for _, pw := range melee.Weapons {
		meleeIDs[pw.Weapon.ID] = struct{}{}
	}
	s.Contains(meleeIDs, "xotecs-twin-fangs")
}

func (s *OrchestratorTestSuite) TestListAvailableEquipmentFactionPriced() {
	output, err := s.svc.ListAvailableEquipment(s.ctx, &roster.ListAvailableInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)

	var flashbang *roster.PricedEquipment
	for i := range output.Equipment {
		if output.Equipment[i].Equipment.ID == "flashbang" {
			flashbang = &output.Equipment[i]
		}
	}
	s.Require().NotNil(flashbang)
	s.Equal(7, flashbang.Cost)
	s.Equal(4, flashbang.Delta)
}

func (s *OrchestratorTestSuite) TestListAvailableArmorFactionPriced() {
	output, err := s.svc.ListAvailableArmor(s.ctx, &roster.ListAvailableInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Armor, 3)

	for _, pa := range output.Armor {
		if pa.Armor.ID == "heavy-armor" {
			s.Equal(6, pa.Cost)
			s.Equal(-3, pa.Delta)
		}
	}
}

func (s *OrchestratorTestSuite) TestAttachAndDetachItem() {
	selected, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)
	base := selected.Unit.TotalCost

	attached, err := s.svc.AttachItem(s.ctx, &roster.AttachItemInput{
		Unit:   selected.Unit,
		Kind:   roster.ItemKindWeapon,
		ItemID: "bolt-rifle",
	})
	s.Require().NoError(err)
	s.Len(attached.Unit.Weapons, 1)
	s.Greater(attached.Unit.TotalCost, base)
	// Input unit untouched
	s.Empty(selected.Unit.Weapons)

	detached, err := s.svc.DetachItem(s.ctx, &roster.DetachItemInput{
		Unit:   attached.Unit,
		Kind:   roster.ItemKindWeapon,
		ItemID: "bolt-rifle",
	})
	s.Require().NoError(err)
	s.Empty(detached.Unit.Weapons)
	s.Equal(base, detached.Unit.TotalCost)
}

func (s *OrchestratorTestSuite) TestAttachItemErrors() {
	selected, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)

	_, err = s.svc.AttachItem(s.ctx, &roster.AttachItemInput{
		Unit:   selected.Unit,
		Kind:   roster.ItemKindWeapon,
		ItemID: "phase-blade",
	})
	s.True(errors.IsNotFound(err))

	_, err = s.svc.AttachItem(s.ctx, &roster.AttachItemInput{
		Unit:   selected.Unit,
		Kind:   roster.ItemKind("relic"),
		ItemID: "bolt-rifle",
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAttachItemSlotCap() {
	selected, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)

	unit := selected.Unit
	for _, id := range []string{"bolt-rifle", "pistol"} {
		output, err := s.svc.AttachItem(s.ctx, &roster.AttachItemInput{
			Unit:   unit,
			Kind:   roster.ItemKindWeapon,
			ItemID: id,
		})
		s.Require().NoError(err)
		unit = output.Unit
	}

	_, err = s.svc.AttachItem(s.ctx, &roster.AttachItemInput{
		Unit:   unit,
		Kind:   roster.ItemKindWeapon,
		ItemID: "bayonet",
	})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
}

func (s *OrchestratorTestSuite) TestCommitRemoveReplace() {
	created, err := s.svc.CreateWarband(s.ctx, &roster.CreateWarbandInput{
		Name:      "Host",
		FactionID: catalog.FactionChurchOfTheMartyr,
	})
	s.Require().NoError(err)

	selected, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionChurchOfTheMartyr,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)

	committed, err := s.svc.CommitUnit(s.ctx, &roster.CommitUnitInput{
		Warband: created.Warband,
		Unit:    selected.Unit,
	})
	s.Require().NoError(err)
	s.Len(committed.Warband.Units, 1)
	s.Equal(selected.Unit.TotalCost, committed.Warband.TotalCost)

	upgraded, err := s.svc.AttachItem(s.ctx, &roster.AttachItemInput{
		Unit:   selected.Unit,
		Kind:   roster.ItemKindWeapon,
		ItemID: "bolt-rifle",
	})
	s.Require().NoError(err)

	replaced, err := s.svc.ReplaceUnit(s.ctx, &roster.ReplaceUnitInput{
		Warband: committed.Warband,
		Unit:    upgraded.Unit,
	})
	s.Require().NoError(err)
	s.Equal(upgraded.Unit.TotalCost, replaced.Warband.TotalCost)

	removed, err := s.svc.RemoveUnit(s.ctx, &roster.RemoveUnitInput{
		Warband: replaced.Warband,
		UnitID:  selected.Unit.ID,
	})
	s.Require().NoError(err)
	s.Empty(removed.Warband.Units)
	s.Zero(removed.Warband.TotalCost)
}

func (s *OrchestratorTestSuite) TestCommitUnitFactionMismatch() {
	created, err := s.svc.CreateWarband(s.ctx, &roster.CreateWarbandInput{
		Name:      "Host",
		FactionID: catalog.FactionChurchOfTheMartyr,
	})
	s.Require().NoError(err)

	selected, err := s.svc.SelectArchetype(s.ctx, &roster.SelectArchetypeInput{
		FactionID: catalog.FactionXiuhcoatl,
		UnitType:  wb.UnitTypeLineTrooper,
	})
	s.Require().NoError(err)

	_, err = s.svc.CommitUnit(s.ctx, &roster.CommitUnitInput{
		Warband: created.Warband,
		Unit:    selected.Unit,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestEncodeDecodeRoundTrip() {
	band := builders.NewWarbandBuilder().
		WithUnit(wb.UnitTypeLineTrooper).
		WithUnit(wb.UnitTypeMarksmen).
		Build()

	encoded, err := s.svc.EncodeWarband(s.ctx, &roster.EncodeWarbandInput{Warband: band})
	s.Require().NoError(err)
	s.NotEmpty(encoded.Code)

	decoded, err := s.svc.DecodeWarband(s.ctx, &roster.DecodeWarbandInput{Code: encoded.Code})
	s.Require().NoError(err)
	s.Equal(band.Name, decoded.Warband.Name)
	s.Equal(band.FactionID, decoded.Warband.FactionID)
	s.Len(decoded.Warband.Units, 2)
	s.Equal(band.TotalCost, decoded.Warband.TotalCost)
	// Imported rosters never collide with existing ones
	s.NotEqual(band.ID, decoded.Warband.ID)
}

func (s *OrchestratorTestSuite) TestDecodeWarbandInvalid() {
	_, err := s.svc.DecodeWarband(s.ctx, &roster.DecodeWarbandInput{Code: "not a code"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveLoadListDelete() {
	band := builders.NewWarbandBuilder().WithUnit(wb.UnitTypeLineTrooper).Build()

	saved, err := s.svc.SaveWarband(s.ctx, &roster.SaveWarbandInput{Warband: band})
	s.Require().NoError(err)
	s.Equal(band.ID, saved.Record.Warband.ID)

	// Saving again upserts rather than failing
	band.Name = "Renamed Host"
	resaved, err := s.svc.SaveWarband(s.ctx, &roster.SaveWarbandInput{Warband: band})
	s.Require().NoError(err)
	s.Equal("Renamed Host", resaved.Record.Warband.Name)
	s.Equal(saved.Record.CreatedAt, resaved.Record.CreatedAt)

	loaded, err := s.svc.LoadWarband(s.ctx, &roster.LoadWarbandInput{ID: band.ID})
	s.Require().NoError(err)
	s.Equal("Renamed Host", loaded.Record.Warband.Name)

	list, err := s.svc.ListWarbands(s.ctx, &roster.ListWarbandsInput{})
	s.Require().NoError(err)
	s.Len(list.Records, 1)

	_, err = s.svc.DeleteWarband(s.ctx, &roster.DeleteWarbandInput{ID: band.ID})
	s.Require().NoError(err)

	_, err = s.svc.LoadWarband(s.ctx, &roster.LoadWarbandInput{ID: band.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestPlayMode() {
	band := builders.NewWarbandBuilder().WithUnit(wb.UnitTypeLineTrooper).Build()
	unitID := band.Units[0].ID

	started, err := s.svc.StartTracker(s.ctx, &roster.StartTrackerInput{Warband: band})
	s.Require().NoError(err)
	s.Equal(1, started.Tracker.Turn)

	state := started.Tracker.Units[unitID]
	s.Equal(band.Units[0].Vigor, state.MaxVigor)
	s.Equal(band.Units[0].Wounds, state.CurrentWounds)

	spent, err := s.svc.SpendVigor(s.ctx, &roster.SpendVigorInput{
		Tracker: started.Tracker,
		UnitID:  unitID,
		Amount:  1,
	})
	s.Require().NoError(err)
	s.Equal(state.MaxVigor-1, spent.Tracker.Units[unitID].RemainingVigor())

	wounded, err := s.svc.ChangeWounds(s.ctx, &roster.ChangeWoundsInput{
		Tracker: spent.Tracker,
		UnitID:  unitID,
		Delta:   -1,
	})
	s.Require().NoError(err)
	s.Equal(state.MaxWounds-1, wounded.Tracker.Units[unitID].CurrentWounds)

	next, err := s.svc.AdvanceTurn(s.ctx, &roster.AdvanceTurnInput{Tracker: wounded.Tracker})
	s.Require().NoError(err)
	s.Equal(2, next.Tracker.Turn)
	s.Equal(state.MaxVigor, next.Tracker.Units[unitID].RemainingVigor())
	s.Equal(state.MaxWounds-1, next.Tracker.Units[unitID].CurrentWounds)

	reset, err := s.svc.ResetTracker(s.ctx, &roster.ResetTrackerInput{Tracker: next.Tracker})
	s.Require().NoError(err)
	s.Equal(1, reset.Tracker.Turn)
	s.Equal(state.MaxWounds, reset.Tracker.Units[unitID].CurrentWounds)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// Repository failures must pass through the service untouched.
func TestSaveWarbandRepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	mockRepo := warbandmock.NewMockRepository(ctrl)
	cat := catalog.New()
	gen := idgen.NewSequential("test-")

	ruleset, err := rules.New(&rules.Config{Catalog: cat})
	if err != nil {
		t.Fatal(err)
	}
	cdc, err := codec.New(&codec.Config{Catalog: cat, IDGen: gen})
	if err != nil {
		t.Fatal(err)
	}

	svc, err := rosterorch.New(&rosterorch.Config{
		Repo:    mockRepo,
		Catalog: cat,
		Rules:   ruleset,
		Codec:   cdc,
		IDGen:   gen,
	})
	if err != nil {
		t.Fatal(err)
	}

	band := testutils.CreateTestWarband(catalog.FactionChurchOfTheMartyr)

	mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil, errors.Internal("redis unavailable"))

	if _, err := svc.SaveWarband(ctx, &roster.SaveWarbandInput{Warband: band}); !errors.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}

	// A NotFound from Update falls through to Create
	mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		Return(nil, errors.NotFoundf("warband with ID %s not found", band.ID))
	mockRepo.EXPECT().
		Create(ctx, warbandrepo.CreateInput{Warband: band}).
		Return(&warbandrepo.CreateOutput{Record: &warbandrepo.Record{Warband: *band}}, nil)

	output, err := svc.SaveWarband(ctx, &roster.SaveWarbandInput{Warband: band})
	if err != nil {
		t.Fatal(err)
	}
	if output.Record.Warband.ID != band.ID {
		t.Fatalf("expected record for %s, got %s", band.ID, output.Record.Warband.ID)
	}
}
