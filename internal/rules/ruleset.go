// Package rules implements the build-time game rules: faction-adjusted
// pricing, slot caps, warband assembly, and the play-mode tracker. Every
// operation is pure, taking values and returning replacements.
package rules

import (
	"github.com/warbandforge/warband-api/internal/catalog"
	"github.com/warbandforge/warband-api/internal/errors"
)

// Config holds dependencies for the ruleset.
type Config struct {
	Catalog catalog.Provider

	// EnforceWeaponFactionRestriction gates weapon listings on the
	// warband's faction. Off by default; relic weapons are otherwise
	// purchasable by anyone, matching the tabletop beta rules.
	EnforceWeaponFactionRestriction bool
}

// Validate ensures required dependencies are set
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	return vb.Build()
}

// Ruleset prices items and validates builds against a catalog.
type Ruleset struct {
	catalog                         catalog.Provider
	enforceWeaponFactionRestriction bool
}

// New creates a ruleset with the given configuration
func New(cfg *Config) (*Ruleset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Ruleset{
		catalog:                         cfg.Catalog,
		enforceWeaponFactionRestriction: cfg.EnforceWeaponFactionRestriction,
	}, nil
}
