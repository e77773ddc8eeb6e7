package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okubo/staffdir-go/pkg/staffdir/deptsync"
)

var (
	syncCreates   []string
	syncMerges    []string
	syncMaps      []string
	syncRemoves   []string
	syncCreateAll bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile employee department names with the department list",
	Long: `sync finds department names referenced by employees that have no
department row and applies one resolution per name. With no resolution flags
it prints the orphaned names and affected employee counts.

Every orphaned name needs exactly one resolution before anything is applied;
an incomplete set fails the whole batch and changes nothing.

Resolutions (all repeatable):
  --create "OLD"            create a department row for OLD
  --create "OLD=NEW"        create under the corrected name NEW and repoint
  --merge  "A+B=FINAL"      one new row FINAL for both orphaned names A and B
  --map    "OLD=EXISTING"   repoint employees to an existing department
  --remove "OLD"            blank the department on employees using OLD
  --create-all              create a row for every orphaned name`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := openDirectory()
		if err != nil {
			return err
		}

		orphans := deptsync.Orphans(dir)
		if len(orphans) == 0 {
			fmt.Println("All departments are in sync")
			return nil
		}

		plan, err := buildSyncPlan(orphans)
		if err != nil {
			return err
		}
		if len(plan) == 0 {
			fmt.Printf("%d orphaned department name(s):\n", len(orphans))
			for _, name := range orphans {
				fmt.Printf("  %-30s %d employee(s)\n", name, dir.EmployeeCountByDepartment(name))
			}
			fmt.Println("\nRe-run with --create/--merge/--map/--remove to resolve them")
			return nil
		}

		sum, err := deptsync.Apply(dir, plan)
		if err != nil {
			return err
		}
		if err := saveDirectory(path, dir); err != nil {
			return err
		}
		logger.Info().
			Int("created", sum.Created).
			Int("merged", sum.Merged).
			Int("remapped", sum.Remapped).
			Int("cleared", sum.Cleared).
			Msg("department sync applied")
		fmt.Printf("Sync complete: %d created, %d merged, %d renamed, %d remapped, %d cleared\n",
			sum.Created, sum.Merged, sum.Renamed, sum.Remapped, sum.Cleared)
		return nil
	},
}

func buildSyncPlan(orphans []string) (deptsync.Plan, error) {
	plan := make(deptsync.Plan)
	if syncCreateAll {
		for _, name := range orphans {
			plan[name] = deptsync.Resolution{Kind: deptsync.KindCreate}
		}
	}
	for _, spec := range syncCreates {
		old, newName := splitPair(spec, "=")
		plan[old] = deptsync.Resolution{Kind: deptsync.KindCreate, NewName: newName}
	}
	for _, spec := range syncMerges {
		pair, finalName := splitPair(spec, "=")
		a, b := splitPair(pair, "+")
		if b == "" {
			return nil, fmt.Errorf("invalid merge %q: want A+B=FINAL", spec)
		}
		if finalName == "" {
			finalName = b
		}
		plan[a] = deptsync.Resolution{Kind: deptsync.KindMerge, Other: b, FinalName: finalName}
		plan[b] = deptsync.Resolution{Kind: deptsync.KindMerge, Other: a, FinalName: finalName}
	}
	for _, spec := range syncMaps {
		old, target := splitPair(spec, "=")
		if target == "" {
			return nil, fmt.Errorf("invalid map %q: want OLD=EXISTING", spec)
		}
		plan[old] = deptsync.Resolution{Kind: deptsync.KindMap, Target: target}
	}
	for _, name := range syncRemoves {
		plan[strings.TrimSpace(name)] = deptsync.Resolution{Kind: deptsync.KindRemove}
	}
	return plan, nil
}

func splitPair(s, sep string) (string, string) {
	left, right, _ := strings.Cut(s, sep)
	return strings.TrimSpace(left), strings.TrimSpace(right)
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringArrayVar(&syncCreates, "create", nil, `create a department: "OLD" or "OLD=NEW"`)
	syncCmd.Flags().StringArrayVar(&syncMerges, "merge", nil, `merge two orphaned names: "A+B=FINAL"`)
	syncCmd.Flags().StringArrayVar(&syncMaps, "map", nil, `map to an existing department: "OLD=EXISTING"`)
	syncCmd.Flags().StringArrayVar(&syncRemoves, "remove", nil, `blank the department on employees: "OLD"`)
	syncCmd.Flags().BoolVar(&syncCreateAll, "create-all", false, "create a department for every orphaned name")
}
