package codec

import (
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
)

// The single-letter keys are the original sharing format; v is the schema
// version added on top of it. Changing any letter breaks every code in
// the wild.
type wireWarband struct {
	Version   int        `json:"v"`
	ID        string     `json:"a"`
	Name      string     `json:"b"`
	FactionID string     `json:"c"`
	Units     []wireUnit `json:"d"`
	TotalCost int        `json:"e"`
}

type wireUnit struct {
	ID            string       `json:"f"`
	Name          string       `json:"g"`
	FactionID     string       `json:"h"`
	UnitType      string       `json:"i"`
	BaseCost      int          `json:"j"`
	Competency    int          `json:"k"`
	Resilience    int          `json:"l"`
	Willpower     int          `json:"m"`
	Vigor         int          `json:"n"`
	Wounds        int          `json:"o"`
	Weapons       []wireWeapon `json:"p"`
	Armor         []wireArmor  `json:"q"`
	Equipment     []wireItem   `json:"r"`
	Skills        []wireItem   `json:"s"`
	DefaultSkills []wireItem   `json:"t"`
	TotalCost     int          `json:"u"`
}

type wireWeapon struct {
	ID          string   `json:"v"`
	Name        string   `json:"w"`
	Cost        int      `json:"x"`
	CombatPower int      `json:"z"`
	KeywordIDs  []string `json:"aa"`
}

type wireArmor struct {
	ID              string `json:"v"`
	Name            string `json:"w"`
	Cost            int    `json:"x"`
	ArmorValue      int    `json:"armorValue"`
	MovementPenalty int    `json:"movementPenalty"`
}

type wireItem struct {
	ID   string `json:"v"`
	Name string `json:"w"`
	Cost int    `json:"x"`
}

func (w wireWarband) validate() error {
	if w.Version != Version {
		return errors.InvalidArgumentf("unsupported schema version %d", w.Version)
	}
	if w.Name == "" || w.FactionID == "" {
		return errors.InvalidArgument("missing warband fields")
	}
	for _, u := range w.Units {
		if u.Name == "" || u.FactionID == "" || u.UnitType == "" {
			return errors.InvalidArgument("missing unit fields")
		}
	}
	return nil
}

func compressWarband(w wb.Warband) wireWarband {
	units := make([]wireUnit, len(w.Units))
	for i, u := range w.Units {
		units[i] = compressUnit(u)
	}
	return wireWarband{
		Version:   Version,
		Name:      w.Name,
		FactionID: w.FactionID,
		Units:     units,
		TotalCost: w.TotalCost,
	}
}

func compressUnit(u wb.Unit) wireUnit {
	weapons := make([]wireWeapon, len(u.Weapons))
	for i, w := range u.Weapons {
		keywords := make([]string, len(w.WeaponKeywords))
		for j, k := range w.WeaponKeywords {
			keywords[j] = k.ID
		}
		weapons[i] = wireWeapon{
			ID:          w.ID,
			Name:        w.Name,
			Cost:        w.Cost,
			CombatPower: w.CombatPower,
			KeywordIDs:  keywords,
		}
	}

	armor := make([]wireArmor, len(u.Armor))
	for i, a := range u.Armor {
		armor[i] = wireArmor{
			ID:              a.ID,
			Name:            a.Name,
			Cost:            a.Cost,
			ArmorValue:      a.ArmorValue,
			MovementPenalty: a.MovementPenalty,
		}
	}

	return wireUnit{
		Name:          u.Name,
		FactionID:     u.FactionID,
		UnitType:      string(u.UnitType),
		BaseCost:      u.BaseCost,
		Competency:    u.Competency,
		Resilience:    u.Resilience,
		Willpower:     u.Willpower,
		Vigor:         u.Vigor,
		Wounds:        u.Wounds,
		Weapons:       weapons,
		Armor:         armor,
		Equipment:     compressItems(u.Equipment, func(e wb.Equipment) wireItem {
			return wireItem{ID: e.ID, Name: e.Name, Cost: e.Cost}
		}),
		Skills:        compressSkills(u.Skills),
		DefaultSkills: compressSkills(u.DefaultSkills),
		TotalCost:     u.TotalCost,
	}
}

func compressItems[T any](items []T, project func(T) wireItem) []wireItem {
	out := make([]wireItem, len(items))
	for i, item := range items {
		out[i] = project(item)
	}
	return out
}

func compressSkills(skills []wb.Skill) []wireItem {
	return compressItems(skills, func(s wb.Skill) wireItem {
		return wireItem{ID: s.ID, Name: s.Name, Cost: s.Cost}
	})
}
