package main

import (
	"context"

	"github.com/warbandforge/warband-api/internal/catalog"
	"github.com/warbandforge/warband-api/internal/errors"
	"github.com/warbandforge/warband-api/internal/codec"
	"github.com/warbandforge/warband-api/internal/config"
	"github.com/warbandforge/warband-api/internal/orchestrators/roster"
	"github.com/warbandforge/warband-api/internal/pkg/idgen"
	"github.com/warbandforge/warband-api/internal/redis"
	warbandrepo "github.com/warbandforge/warband-api/internal/repositories/warband"
	"github.com/warbandforge/warband-api/internal/rules"
	rostersvc "github.com/warbandforge/warband-api/internal/services/roster"
)

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

func newCatalog() catalog.Provider {
	return catalog.New()
}

// unreachableRepo backs commands that never touch the saved collection.
type unreachableRepo struct{}

func (unreachableRepo) Create(_ context.Context, _ warbandrepo.CreateInput) (*warbandrepo.CreateOutput, error) {
	return nil, errors.Unavailable("saved collection is not configured")
}

func (unreachableRepo) Get(_ context.Context, _ warbandrepo.GetInput) (*warbandrepo.GetOutput, error) {
	return nil, errors.Unavailable("saved collection is not configured")
}

func (unreachableRepo) Update(_ context.Context, _ warbandrepo.UpdateInput) (*warbandrepo.UpdateOutput, error) {
	return nil, errors.Unavailable("saved collection is not configured")
}

func (unreachableRepo) Delete(_ context.Context, _ warbandrepo.DeleteInput) (*warbandrepo.DeleteOutput, error) {
	return nil, errors.Unavailable("saved collection is not configured")
}

func (unreachableRepo) List(_ context.Context, _ warbandrepo.ListInput) (*warbandrepo.ListOutput, error) {
	return nil, errors.Unavailable("saved collection is not configured")
}

// newLocalService wires the roster service without Redis, for commands
// that only read the catalog or translate codes.
func newLocalService(cfg *config.Config) (rostersvc.Service, error) {
	cat := catalog.New()
	gen := idgen.NewUUID("wb_")

	ruleset, err := rules.New(&rules.Config{
		Catalog:                         cat,
		EnforceWeaponFactionRestriction: cfg.Rules.EnforceWeaponFactionRestriction,
	})
	if err != nil {
		return nil, err
	}

	cdc, err := codec.New(&codec.Config{Catalog: cat, IDGen: gen})
	if err != nil {
		return nil, err
	}

	return roster.New(&roster.Config{
		Repo:    unreachableRepo{},
		Catalog: cat,
		Rules:   ruleset,
		Codec:   cdc,
		IDGen:   gen,
	})
}

// newService wires the full roster service, including the Redis-backed
// saved collection.
func newService(cfg *config.Config) (rostersvc.Service, error) {
	client, err := redis.NewClient(cfg.Redis.Address, &redis.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, err
	}

	repo, err := warbandrepo.NewRedis(&warbandrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	cat := catalog.New()
	gen := idgen.NewUUID("wb_")

	ruleset, err := rules.New(&rules.Config{
		Catalog:                         cat,
		EnforceWeaponFactionRestriction: cfg.Rules.EnforceWeaponFactionRestriction,
	})
	if err != nil {
		return nil, err
	}

	cdc, err := codec.New(&codec.Config{Catalog: cat, IDGen: gen})
	if err != nil {
		return nil, err
	}

	return roster.New(&roster.Config{
		Repo:    repo,
		Catalog: cat,
		Rules:   ruleset,
		Codec:   cdc,
		IDGen:   gen,
	})
}
