package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/warbandforge/warband-api/internal/services/roster"
)

var rosterFaction string

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the saved warband collection",
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved warbands",
	RunE:  runRosterList,
}

var rosterShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Print a saved warband as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterShow,
}

var rosterDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a saved warband",
	Args:  cobra.ExactArgs(1),
	RunE:  runRosterDelete,
}

func init() {
	rosterListCmd.Flags().StringVar(&rosterFaction, "faction", "", "only list warbands of this faction")

	rosterCmd.AddCommand(rosterListCmd)
	rosterCmd.AddCommand(rosterShowCmd)
	rosterCmd.AddCommand(rosterDeleteCmd)
}

func runRosterList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	output, err := svc.ListWarbands(cmd.Context(), &roster.ListWarbandsInput{FactionID: rosterFaction})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tFACTION\tUNITS\tCOST\tUPDATED")
	for _, r := range output.Records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.Warband.ID, r.Warband.Name, r.Warband.FactionID,
			len(r.Warband.Units), r.Warband.TotalCost,
			r.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runRosterShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	output, err := svc.LoadWarband(cmd.Context(), &roster.LoadWarbandInput{ID: args[0]})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(output.Record.Warband, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runRosterDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	if _, err := svc.DeleteWarband(cmd.Context(), &roster.DeleteWarbandInput{ID: args[0]}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted warband %s\n", args[0])
	return nil
}
