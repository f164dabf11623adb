// Package catalog holds the static reference data for the game: factions,
// faction cost-modifier tables, weapon keywords, weapons, armor, equipment,
// skills, and unit archetype templates. The data is load-time constant;
// Provider adds id-keyed lookup on top for codec rehydration and the build
// flow.
package catalog

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=catalogmock github.com/warbandforge/warband-api/internal/catalog Provider

// Provider exposes read-only catalog data with O(1) lookup by id.
type Provider interface {
	Factions() []wb.Faction
	FactionByID(id string) (wb.Faction, bool)

	// ModifierForFaction returns the faction's cost-modifier table.
	// Most lookups miss: a faction without a table simply pays base costs.
	ModifierForFaction(factionID string) (wb.FactionModifier, bool)

	WeaponKeywords() []wb.WeaponKeyword
	WeaponKeywordByID(id string) (wb.WeaponKeyword, bool)

	Weapons() []wb.Weapon
	WeaponByID(id string) (wb.Weapon, bool)

	Armor() []wb.Armor
	ArmorByID(id string) (wb.Armor, bool)

	Equipment() []wb.Equipment
	EquipmentByID(id string) (wb.Equipment, bool)

	Skills() []wb.Skill
	SkillByID(id string) (wb.Skill, bool)

	// Templates are unit archetypes keyed by (faction, unit type). A
	// template is a complete Unit with catalog identity and no optional
	// attachments; build sessions clone it under a fresh id.
	Templates() []wb.Unit
	TemplatesForFaction(factionID string) []wb.Unit
	Template(factionID string, unitType wb.UnitType) (wb.Unit, bool)
}

type provider struct {
	factions  []wb.Faction
	modifiers []wb.FactionModifier
	keywords  []wb.WeaponKeyword
	weapons   []wb.Weapon
	armor     []wb.Armor
	equipment []wb.Equipment
	skills    []wb.Skill
	templates []wb.Unit

	factionIndex  map[string]wb.Faction
	modifierIndex map[string]wb.FactionModifier
	keywordIndex  map[string]wb.WeaponKeyword
	weaponIndex   map[string]wb.Weapon
	armorIndex    map[string]wb.Armor
	gearIndex     map[string]wb.Equipment
	skillIndex    map[string]wb.Skill
	templateIndex map[templateKey]wb.Unit
}

type templateKey struct {
	factionID string
	unitType  wb.UnitType
}

// New returns the catalog Provider backed by the built-in data set.
func New() Provider {
	p := &provider{
		factions:  factions,
		modifiers: factionModifiers,
		keywords:  weaponKeywords,
		weapons:   weapons,
		armor:     armorList,
		equipment: equipmentItems,
		skills:    skills,
		templates: unitTemplates,
	}

	p.factionIndex = make(map[string]wb.Faction, len(p.factions))
	for _, f := range p.factions {
		p.factionIndex[f.ID] = f
	}
	p.modifierIndex = make(map[string]wb.FactionModifier, len(p.modifiers))
	for _, m := range p.modifiers {
		p.modifierIndex[m.FactionID] = m
	}
	p.keywordIndex = make(map[string]wb.WeaponKeyword, len(p.keywords))
	for _, k := range p.keywords {
		p.keywordIndex[k.ID] = k
	}
	p.weaponIndex = make(map[string]wb.Weapon, len(p.weapons))
	for _, w := range p.weapons {
		p.weaponIndex[w.ID] = w
	}
	p.armorIndex = make(map[string]wb.Armor, len(p.armor))
	for _, a := range p.armor {
		p.armorIndex[a.ID] = a
	}
	p.gearIndex = make(map[string]wb.Equipment, len(p.equipment))
	for _, e := range p.equipment {
		p.gearIndex[e.ID] = e
	}
	p.skillIndex = make(map[string]wb.Skill, len(p.skills))
	for _, s := range p.skills {
		p.skillIndex[s.ID] = s
	}
	p.templateIndex = make(map[templateKey]wb.Unit, len(p.templates))
	for _, t := range p.templates {
		p.templateIndex[templateKey{factionID: t.FactionID, unitType: t.UnitType}] = t
	}

	return p
}

func (p *provider) Factions() []wb.Faction {
	return append([]wb.Faction(nil), p.factions...)
}

func (p *provider) FactionByID(id string) (wb.Faction, bool) {
	f, ok := p.factionIndex[id]
	return f, ok
}

func (p *provider) ModifierForFaction(factionID string) (wb.FactionModifier, bool) {
	m, ok := p.modifierIndex[factionID]
	return m, ok
}

func (p *provider) WeaponKeywords() []wb.WeaponKeyword {
	return append([]wb.WeaponKeyword(nil), p.keywords...)
}

func (p *provider) WeaponKeywordByID(id string) (wb.WeaponKeyword, bool) {
	k, ok := p.keywordIndex[id]
	return k, ok
}

func (p *provider) Weapons() []wb.Weapon {
	return append([]wb.Weapon(nil), p.weapons...)
}

func (p *provider) WeaponByID(id string) (wb.Weapon, bool) {
	w, ok := p.weaponIndex[id]
	return w, ok
}

func (p *provider) Armor() []wb.Armor {
	return append([]wb.Armor(nil), p.armor...)
}

func (p *provider) ArmorByID(id string) (wb.Armor, bool) {
	a, ok := p.armorIndex[id]
	return a, ok
}

func (p *provider) Equipment() []wb.Equipment {
	return append([]wb.Equipment(nil), p.equipment...)
}

func (p *provider) EquipmentByID(id string) (wb.Equipment, bool) {
	e, ok := p.gearIndex[id]
	return e, ok
}

func (p *provider) Skills() []wb.Skill {
	return append([]wb.Skill(nil), p.skills...)
}

func (p *provider) SkillByID(id string) (wb.Skill, bool) {
	s, ok := p.skillIndex[id]
	return s, ok
}

func (p *provider) Templates() []wb.Unit {
	return append([]wb.Unit(nil), p.templates...)
}

func (p *provider) TemplatesForFaction(factionID string) []wb.Unit {
	out := make([]wb.Unit, 0, 8)
	for _, t := range p.templates {
		if t.FactionID == factionID {
			out = append(out, t)
		}
	}
	return out
}

func (p *provider) Template(factionID string, unitType wb.UnitType) (wb.Unit, bool) {
	t, ok := p.templateIndex[templateKey{factionID: factionID, unitType: unitType}]
	return t, ok
}
