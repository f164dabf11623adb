package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/services/roster"
)

var codeFile string

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Turn a warband JSON file into a share code",
	Long: `Read a warband as JSON from --file (or stdin) and print its share
code. The code carries the full roster and can be imported with decode.`,
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode CODE",
	Short: "Turn a share code back into a warband",
	Long: `Decode a share code and print the warband as JSON. Items are
rehydrated from the catalog and the roster receives fresh ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	encodeCmd.Flags().StringVar(&codeFile, "file", "", "warband JSON file (defaults to stdin)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newLocalService(cfg)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if codeFile != "" {
		f, err := os.Open(codeFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	var band wb.Warband
	if err := json.Unmarshal(data, &band); err != nil {
		return fmt.Errorf("failed to parse warband JSON: %w", err)
	}

	output, err := svc.EncodeWarband(cmd.Context(), &roster.EncodeWarbandInput{Warband: &band})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.Code)
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	svc, err := newLocalService(cfg)
	if err != nil {
		return err
	}

	output, err := svc.DecodeWarband(cmd.Context(), &roster.DecodeWarbandInput{Code: args[0]})
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(output.Warband, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
