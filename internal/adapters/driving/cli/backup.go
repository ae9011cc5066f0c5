package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Long: `Export contacts, categories and check-ins as a JSON snapshot.

Writes to stdout when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a JSON snapshot",
	Long: `Import a snapshot written by 'kith export'.

Records are matched by ID, so importing the same snapshot twice is safe.
Nothing is written if any record in the file is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if backupService == nil {
		return errors.New("backup service not configured")
	}

	snapshot, err := backupService.Export(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if len(args) == 1 {
		f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", args[0], err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if len(args) == 1 {
		cmd.Printf("Exported %d contacts, %d categories and %d check-ins to %s\n",
			len(snapshot.Contacts), len(snapshot.Categories), len(snapshot.CheckIns), args[0])
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if backupService == nil {
		return errors.New("backup service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	result, err := backupService.Import(cmd.Context(), &snapshot)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	cmd.Printf("Imported %d contacts, %d categories and %d check-ins\n",
		result.Contacts, result.Categories, result.CheckIns)
	return nil
}
