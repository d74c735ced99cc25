package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	checkProject  string
	checkUser     string
	checkResource string
	checkManager  string
)

var hierarchyCmd = &cobra.Command{
	Use:   "hierarchy",
	Short: "Inspect the reporting hierarchy of a project",
}

var hierarchyCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a manager assignment would create a cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		sync, dispatcher := newSyncService(db)
		defer dispatcher.Close()

		resp, err := sync.CheckHierarchy(cmd.Context(), checkUser, checkProject, checkResource, checkManager)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if resp.Allowed {
			fmt.Fprintf(out, "ok: %s may report to %s\n", resp.ResourceID, resp.ManagerID)
			return nil
		}
		fmt.Fprintf(out, "cycle: %s\n", resp.Reason)
		if len(resp.Path) > 0 {
			fmt.Fprintf(out, "  path: %s\n", strings.Join(resp.Path, " -> "))
		}
		return fmt.Errorf("manager assignment rejected")
	},
}

func init() {
	hierarchyCheckCmd.Flags().StringVarP(&checkProject, "project", "p", "", "project id")
	hierarchyCheckCmd.Flags().StringVarP(&checkUser, "user", "u", "", "user the check runs as")
	hierarchyCheckCmd.Flags().StringVar(&checkResource, "resource", "", "resource whose manager changes")
	hierarchyCheckCmd.Flags().StringVar(&checkManager, "manager", "", "proposed manager")
	for _, name := range []string{"project", "user", "resource", "manager"} {
		_ = hierarchyCheckCmd.MarkFlagRequired(name)
	}
	hierarchyCmd.AddCommand(hierarchyCheckCmd)
}
