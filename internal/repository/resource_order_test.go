package repository

import (
	"testing"

	"planner-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func resourceRow(id string, managerID ...string) models.Resource {
	r := models.Resource{BaseModel: models.BaseModel{ID: id}}
	if len(managerID) > 0 {
		r.ManagerResourceID = &managerID[0]
	}
	return r
}

func rowIDs(rows []models.Resource) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func TestManagersFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    []models.Resource
		expected []string
	}{
		{
			name:     "manager after its reports",
			input:    []models.Resource{resourceRow("c", "b"), resourceRow("b", "a"), resourceRow("x"), resourceRow("a")},
			expected: []string{"a", "b", "c", "x"},
		},
		{
			name:     "stored manager keeps input order",
			input:    []models.Resource{resourceRow("b", "stored"), resourceRow("a")},
			expected: []string{"b", "a"},
		},
		{
			name:     "cycle terminates",
			input:    []models.Resource{resourceRow("p", "q"), resourceRow("q", "p")},
			expected: []string{"q", "p"},
		},
		{
			name:     "empty",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rowIDs(managersFirst(tt.input)))
		})
	}
}
