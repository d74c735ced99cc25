// Package commands implements plannerctl, the operator CLI of the planner
// backend.
package commands

import (
	"fmt"

	"planner-backend/internal/audit"
	"planner-backend/internal/config"
	"planner-backend/internal/database"
	"planner-backend/internal/delta"
	"planner-backend/internal/repository"
	"planner-backend/internal/service"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "plannerctl",
	Short: "Operate the project planner backend",
	Long: `plannerctl runs maintenance tasks against the planner database: schema
migration, applying a change-set from a file and checking reporting lines.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

// openDatabase connects without migrating; only the migrate command changes
// the schema.
func openDatabase() (*gorm.DB, error) {
	db, err := database.Initialize(globalConfig.DatabaseURL, &database.Options{SkipMigrate: true, MaxOpenConns: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// newSyncService wires the same service the HTTP server uses. Audit entries
// go to the log.
func newSyncService(db *gorm.DB) (*service.SyncService, *audit.Dispatcher) {
	dispatcher := audit.NewDispatcher(audit.NewLogRecorder(), globalConfig.AuditTimeout())
	sync := service.NewSyncService(
		repository.NewUnitOfWork(db),
		repository.NewRepositories(db),
		delta.NewValidator(),
		dispatcher,
		service.SyncOptions{
			Timeout:            globalConfig.SyncTimeout(),
			EnforceBaseVersion: globalConfig.SyncEnforceBaseVersion,
		},
	)
	return sync, dispatcher
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(hierarchyCmd)
}
