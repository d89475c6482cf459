package cmd

import (
	"fmt"

	"partflow-sync/core/sheets"
	"partflow-sync/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the synced tables to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		spreadsheetID, _ := cmd.Flags().GetString("spreadsheet")
		out, _ := cmd.Flags().GetString("out")

		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		svc := export.NewService(sheets.NewProvider(cfg.Sheets, logg), logg)
		f, err := svc.Export(cmd.Context(), spreadsheetID)
		if err != nil {
			return err
		}
		defer f.Close()

		if out == "" {
			out = spreadsheetID + ".xlsx"
		}
		if err := f.SaveAs(out); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
		logg.Info("Workbook written", zap.String("path", out))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("spreadsheet", "", "Spreadsheet ID")
	exportCmd.Flags().String("out", "", "Output file (default <spreadsheet>.xlsx)")
	_ = exportCmd.MarkFlagRequired("spreadsheet")

	RootCmd.AddCommand(exportCmd)
}
