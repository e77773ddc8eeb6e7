package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okubo/staffdir-go/pkg/staffdir/bulkimport"
)

var (
	importMaps        []string
	importDefaults    []string
	importDeptCreates []string
	importDeptMaps    []string
	importDeptSkips   []string
	importCreateDepts bool
	importAsNewRows   []int
	importReplaceRows []int
	importDryRun      bool
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Bulk-import employees from a CSV or Excel file",
	Long: `import reads an arbitrary tabular file and imports its rows as
employees in three stages: column mapping, missing-department resolution,
and row classification.

Columns matching the target field names (ignoring case and spaces) are
mapped automatically; --map overrides or adds mappings and --default sets a
constant for a field.

Department values with no department row must each be resolved with
--dept-create, --dept-map or --dept-skip (or --create-depts for all) before
the batch commits. Rows missing Name or Extension are always skipped; rows
colliding on employee id or extension are skipped unless --import-as-new or
--replace names their file row number.

--dry-run prints the classification without changing anything.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := bulkimport.ReadTable(args[0])
		if err != nil {
			return err
		}
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}

		mapping := bulkimport.AutoDetect(table.Header)
		for _, spec := range importMaps {
			fieldName, column := splitPair(spec, "=")
			field, ok := bulkimport.ParseField(fieldName)
			if !ok {
				return fmt.Errorf("unknown field %q in --map", fieldName)
			}
			if !table.HasColumn(column) {
				return fmt.Errorf("column %q not found in %s", column, args[0])
			}
			mapping[field] = column
		}

		defaults := make(bulkimport.Defaults)
		for _, spec := range importDefaults {
			fieldName, value := splitPair(spec, "=")
			field, ok := bulkimport.ParseField(fieldName)
			if !ok {
				return fmt.Errorf("unknown field %q in --default", fieldName)
			}
			defaults[field] = value
		}

		missing := bulkimport.MissingDepartments(dir, table, mapping, defaults)
		actions, err := buildDeptActions(missing)
		if err != nil {
			return err
		}

		if importDryRun {
			printPreview(bulkimport.BuildPreview(dir, table, mapping, defaults, actions), missing, actions)
			return nil
		}

		overrides := make(bulkimport.Overrides)
		for _, row := range importAsNewRows {
			sel := overrides[row]
			sel.ImportAsNew = true
			overrides[row] = sel
		}
		for _, row := range importReplaceRows {
			sel := overrides[row]
			sel.Replace = true
			overrides[row] = sel
		}

		result, err := bulkimport.Commit(dir, table, mapping, defaults, actions, overrides)
		if err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().
			Int("imported", result.Imported).
			Int("replaced", result.Replaced).
			Int("skipped", result.Skipped).
			Int("errors", result.Errors).
			Msg("bulk import committed")
		fmt.Printf("Imported %d, replaced %d, skipped %d, errors %d\n",
			result.Imported, result.Replaced, result.Skipped, result.Errors)
		if len(result.CreatedDepartments) > 0 {
			fmt.Printf("Created department(s): %s\n", strings.Join(result.CreatedDepartments, ", "))
		}
		return nil
	},
}

func buildDeptActions(missing []string) (bulkimport.DeptActions, error) {
	actions := make(bulkimport.DeptActions)
	if importCreateDepts {
		for _, name := range missing {
			actions[name] = bulkimport.DeptAction{Kind: bulkimport.DeptCreate}
		}
	}
	for _, spec := range importDeptCreates {
		name, description := splitPair(spec, "=")
		actions[name] = bulkimport.DeptAction{Kind: bulkimport.DeptCreate, Description: description}
	}
	for _, spec := range importDeptMaps {
		name, target := splitPair(spec, "=")
		if target == "" {
			return nil, fmt.Errorf("invalid --dept-map %q: want NAME=TARGET", spec)
		}
		actions[name] = bulkimport.DeptAction{Kind: bulkimport.DeptMap, Target: target}
	}
	for _, name := range importDeptSkips {
		actions[strings.TrimSpace(name)] = bulkimport.DeptAction{Kind: bulkimport.DeptSkip}
	}
	return actions, nil
}

func printPreview(p bulkimport.Preview, missing []string, actions bulkimport.DeptActions) {
	fmt.Printf("Preview: %d clean, %d duplicate, %d error row(s)\n",
		len(p.Clean), len(p.Duplicates), len(p.Errors))
	for _, res := range p.Duplicates {
		fmt.Printf("  row %d %s: duplicate (%s)\n",
			res.Line, res.Employee.Name, strings.Join(res.Reasons, "; "))
	}
	for _, res := range p.Errors {
		fmt.Printf("  row %d: error (%s)\n", res.Line, strings.Join(res.Reasons, "; "))
	}
	var unresolved []string
	for _, name := range missing {
		if _, ok := actions[name]; !ok {
			unresolved = append(unresolved, name)
		}
	}
	if len(unresolved) > 0 {
		fmt.Printf("Unresolved department(s): %s\n", strings.Join(unresolved, ", "))
	}
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringArrayVar(&importMaps, "map", nil, `map a field to a column: "FIELD=COLUMN"`)
	importCmd.Flags().StringArrayVar(&importDefaults, "default", nil, `constant value for a field: "FIELD=VALUE"`)
	importCmd.Flags().StringArrayVar(&importDeptCreates, "dept-create", nil, `create a missing department: "NAME" or "NAME=DESCRIPTION"`)
	importCmd.Flags().StringArrayVar(&importDeptMaps, "dept-map", nil, `map a missing department: "NAME=TARGET"`)
	importCmd.Flags().StringArrayVar(&importDeptSkips, "dept-skip", nil, `import rows of this department with a blank department`)
	importCmd.Flags().BoolVar(&importCreateDepts, "create-depts", false, "create every missing department")
	importCmd.Flags().IntSliceVar(&importAsNewRows, "import-as-new", nil, "file row number to import despite duplicates")
	importCmd.Flags().IntSliceVar(&importReplaceRows, "replace", nil, "file row number to overwrite the existing employee with")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "classify rows without committing")
}
