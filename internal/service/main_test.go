//go:build integration
// +build integration

package service_test

import (
	"os"
	"testing"

	"planner-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunMain(m, "service"))
}
