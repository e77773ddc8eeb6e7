package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show directory metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _, err := openDirectory()
		if err != nil {
			return err
		}
		s := dir.Stats()

		fmt.Printf("Employees: %d total, %d active, %d inactive\n",
			s.TotalEmployees, s.ActiveEmployees, s.InactiveEmployees)
		fmt.Printf("Departments: %d\n", s.Departments)
		fmt.Printf("4-digit extensions: %d\n\n", s.FourDigitExtensions)

		if len(s.PerDepartment) > 0 {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DEPARTMENT\tEMPLOYEES")
			for _, dc := range s.PerDepartment {
				fmt.Fprintf(w, "%s\t%d\n", dc.Name, dc.Count)
			}
			w.Flush()
			fmt.Println()
		}

		if len(s.RecentlyUpdated) > 0 {
			fmt.Println("Recently updated:")
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROW\tNAME\tDEPARTMENT\tSTATUS\tLAST UPDATED")
			for _, e := range s.RecentlyUpdated {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					e.RowID, e.Name, orDash(e.Department), e.Status, e.LastUpdated)
			}
			w.Flush()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
