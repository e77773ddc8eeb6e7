package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okubo/staffdir-go/pkg/staffdir/export"
)

var (
	exportFilter   filterFlags
	exportOutput   string
	exportFormat   string
	exportTemplate bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export employees as CSV or Excel",
	Long: `export writes the employee table, narrowed by the same filter flags
as list, as delimited text or as a workbook matching the persisted schema.
CSV goes to stdout unless --output is given; xlsx requires --output.
--template writes the bulk-import template instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportTemplate {
			return writeTemplate()
		}

		dir, _, err := openDirectory()
		if err != nil {
			return err
		}
		employees := dir.List(exportFilter.filter())

		switch strings.ToLower(exportFormat) {
		case "csv":
			w := os.Stdout
			if exportOutput != "" {
				f, err := os.Create(exportOutput)
				if err != nil {
					return fmt.Errorf("creating %s: %w", exportOutput, err)
				}
				defer f.Close()
				w = f
			}
			if err := export.WriteCSV(w, employees); err != nil {
				return err
			}
		case "xlsx":
			if exportOutput == "" {
				return fmt.Errorf("xlsx export requires --output")
			}
			if err := export.WriteXLSX(exportOutput, employees); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format %q (want csv or xlsx)", exportFormat)
		}

		if exportOutput != "" {
			fmt.Fprintf(os.Stderr, "Exported %d employee(s) to %s\n", len(employees), exportOutput)
		}
		return nil
	},
}

func writeTemplate() error {
	w := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOutput, err)
		}
		defer f.Close()
		w = f
	}
	return export.WriteTemplateCSV(w)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout for csv)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "csv or xlsx")
	exportCmd.Flags().BoolVar(&exportTemplate, "template", false, "write the bulk-import template")
}
