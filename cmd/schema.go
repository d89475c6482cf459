package cmd

import (
	"fmt"
	"strings"

	"partflow-sync/core/sheets"
	"partflow-sync/feature/syncer"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect and migrate spreadsheet tables",
}

var schemaEnsureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Bring every table to its current column layout",
	Long: `Creates missing tabs and migrates legacy headers in place, the same way a
sync call does, without pushing any records. With --dry-run nothing is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spreadsheetID, _ := cmd.Flags().GetString("spreadsheet")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := syncer.NewService(sheets.NewProvider(cfg.Sheets, logg), nil, cfg.Sync, logg)
		reports, err := svc.EnsureSchemas(cmd.Context(), spreadsheetID, dryRun)
		if err != nil {
			return err
		}

		fmt.Println("\n--- Schema Report ---")
		if dryRun {
			fmt.Println("(dry run, nothing written)")
		}
		for _, r := range reports {
			status := string(r.Migration.Kind)
			if r.Migration.Rule != "" {
				status += " (" + r.Migration.Rule + ")"
			}
			if r.MigrationError != "" {
				status = "FAILED: " + r.MigrationError
			}
			fmt.Printf("%-12s %s\n", r.Table, status)
			if len(r.Migration.Added) > 0 {
				fmt.Printf("%-12s added: %s\n", "", strings.Join(r.Migration.Added, ", "))
			}
		}
		fmt.Println("---------------------")
		return nil
	},
}

func init() {
	schemaEnsureCmd.Flags().String("spreadsheet", "", "Spreadsheet ID")
	schemaEnsureCmd.Flags().Bool("dry-run", false, "Report migrations without writing")
	_ = schemaEnsureCmd.MarkFlagRequired("spreadsheet")

	schemaCmd.AddCommand(schemaEnsureCmd)
	RootCmd.AddCommand(schemaCmd)
}
