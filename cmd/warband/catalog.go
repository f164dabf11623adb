package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/services/roster"
)

var (
	catalogFaction  string
	catalogUnitType string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [factions|archetypes|weapons|armor|equipment|skills]",
	Short: "Browse the item catalog",
	Long: `List catalog entries, filtered to one unit type and priced for one
faction. Costs shown include faction modifiers; the delta column is the
difference from the base cost.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"factions", "archetypes", "weapons", "armor", "equipment", "skills"},
	RunE:      runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFaction, "faction", "", "faction id to price for")
	catalogCmd.Flags().StringVar(&catalogUnitType, "unit-type", "", "unit type to filter by")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newLocalService(cfg)
	if err != nil {
		return err
	}

	unitType := wb.UnitTypeLineTrooper
	if catalogUnitType != "" {
		unitType = wb.UnitType(catalogUnitType)
		if !unitType.Valid() {
			return fmt.Errorf("unknown unit type %q", catalogUnitType)
		}
	}

	ctx := cmd.Context()
	input := &roster.ListAvailableInput{FactionID: catalogFaction, UnitType: unitType}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch args[0] {
	case "factions":
		return printFactions(cmd, w)
	case "archetypes":
		return printArchetypes(cmd, w)
	case "weapons":
		output, err := svc.ListAvailableWeapons(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tCOST\tDELTA\tCP\tKEYWORDS")
		for _, pw := range output.Weapons {
			kw := make([]string, 0, len(pw.Weapon.WeaponKeywords))
			for _, k := range pw.Weapon.WeaponKeywords {
				kw = append(kw, k.Name)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%+d\t%d\t%s\n",
				pw.Weapon.ID, pw.Weapon.Name, pw.Cost, pw.Delta, pw.Weapon.CombatPower, strings.Join(kw, ", "))
		}
	case "armor":
		output, err := svc.ListAvailableArmor(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tCOST\tDELTA\tAV\tMOVE")
		for _, pa := range output.Armor {
			fmt.Fprintf(w, "%s\t%s\t%d\t%+d\t%d\t%+d\n",
				pa.Armor.ID, pa.Armor.Name, pa.Cost, pa.Delta, pa.Armor.ArmorValue, pa.Armor.MovementPenalty)
		}
	case "equipment":
		output, err := svc.ListAvailableEquipment(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tCOST\tDELTA")
		for _, pe := range output.Equipment {
			fmt.Fprintf(w, "%s\t%s\t%d\t%+d\n",
				pe.Equipment.ID, pe.Equipment.Name, pe.Cost, pe.Delta)
		}
	case "skills":
		output, err := svc.ListAvailableSkills(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tCOST\tDELTA")
		for _, ps := range output.Skills {
			fmt.Fprintf(w, "%s\t%s\t%d\t%+d\n",
				ps.Skill.ID, ps.Skill.Name, ps.Cost, ps.Delta)
		}
	default:
		return fmt.Errorf("unknown catalog section %q", args[0])
	}

	return nil
}

func printFactions(cmd *cobra.Command, w *tabwriter.Writer) error {
	cat := newCatalog()
	fmt.Fprintln(w, "ID\tNAME")
	for _, f := range cat.Factions() {
		fmt.Fprintf(w, "%s\t%s\n", f.ID, f.Name)
	}
	return nil
}

func printArchetypes(cmd *cobra.Command, w *tabwriter.Writer) error {
	cat := newCatalog()

	templates := cat.Templates()
	if catalogFaction != "" {
		templates = cat.TemplatesForFaction(catalogFaction)
	}

	fmt.Fprintln(w, "FACTION\tTYPE\tNAME\tBASE\tCOMP\tRES\tWILL\tVIG\tWOUNDS")
	for _, t := range templates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			t.FactionID, t.UnitType, t.Name, t.BaseCost,
			t.Competency, t.Resilience, t.Willpower, t.Vigor, t.Wounds)
	}
	return nil
}
