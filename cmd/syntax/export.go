package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/syntax/internal/adapters/cli"
)

var (
	exportClean   bool
	exportVerbose bool
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("export-dir", "dist", "directory to write the site to")
	exportCmd.Flags().BoolVar(&exportClean, "clean", false, "remove a previous export first")
	exportCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "list every written file")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every page to static HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		output := cli.NewOutput()
		output.PrintHeader("Syntax Export")

		site, err := newSite()
		if err != nil {
			output.PrintError("%v", err)
			return err
		}

		report := cli.NewExportReport(output, cfg.ExportDir)
		res, err := site.Export(context.Background(), cfg.ExportDir, exportClean, output)
		report.Finish(res.Pages, res.Files, err)
		report.Render(exportVerbose)

		if report.HasFailures() {
			return errors.New("export failed")
		}
		return nil
	},
}
