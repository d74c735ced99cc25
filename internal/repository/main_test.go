//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"planner-backend/internal/testutils"
)

// TestMain removes the shared Postgres container once the package is done
func TestMain(m *testing.M) {
	os.Exit(testutils.RunMain(m, "repository"))
}
