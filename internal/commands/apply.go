package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	applyProject string
	applyUser    string
	applyFile    string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a change-set file to a project",
	Long: `Apply reads a change-set from a YAML or JSON file and applies it exactly
as the delta endpoint would, on behalf of the given user.`,
	Example: "  plannerctl apply --project 0b6f3c1e --user jane --file changes.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := loadChangeSet(applyFile)
		if err != nil {
			return err
		}

		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		sync, dispatcher := newSyncService(db)
		defer dispatcher.Close()

		resp, err := sync.ApplyDelta(cmd.Context(), applyUser, applyProject, cs)
		if err != nil {
			return fmt.Errorf("change-set rejected: %w", err)
		}

		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyProject, "project", "p", "", "project id")
	applyCmd.Flags().StringVarP(&applyUser, "user", "u", "", "user the change-set is applied as")
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "change-set file (.yaml, .yml or .json)")
	_ = applyCmd.MarkFlagRequired("project")
	_ = applyCmd.MarkFlagRequired("user")
	_ = applyCmd.MarkFlagRequired("file")
}
