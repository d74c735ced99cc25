package delta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_FixedOrder(t *testing.T) {
	var names []string
	for _, s := range Plan() {
		names = append(names, s.String())
	}

	assert.Equal(t, []string{
		"project/update",
		"resources/delete", "resources/create", "resources/update",
		"phases/delete", "phases/create", "phases/update",
		"milestones/delete", "milestones/create", "milestones/update",
		"holidays/delete", "holidays/create", "holidays/update",
	}, names)
}

func TestPlan_ParentsBeforeChildren(t *testing.T) {
	position := map[string]int{}
	for i, s := range Plan() {
		position[s.String()] = i
	}

	// assignments reference resources, so resources are written before phases
	assert.Less(t, position["resources/create"], position["phases/create"])
	assert.Less(t, position["resources/update"], position["phases/update"])
	// a record removed and re-added in the same batch must not collide
	for _, entity := range []EntityKind{EntityResource, EntityPhase, EntityMilestone, EntityHoliday} {
		del := Step{entity, OpDelete}.String()
		create := Step{entity, OpCreate}.String()
		assert.Less(t, position[del], position[create], string(entity))
	}
}

func TestPlan_ReturnsCopy(t *testing.T) {
	p := Plan()
	p[0] = Step{EntityHoliday, OpDelete}

	assert.Equal(t, "project/update", Plan()[0].String())
}

func TestChangeSet_Count(t *testing.T) {
	name := "Renamed"
	cs := &ChangeSet{
		Project:   &ProjectPatch{Name: &name},
		Resources: Collection[ResourceInput]{Created: []ResourceInput{{ID: "a"}, {ID: "b"}}, Deleted: []string{"c"}},
		Holidays:  Collection[HolidayInput]{Updated: []HolidayInput{{ID: "h"}}},
	}

	assert.Equal(t, 1, cs.Count(Step{EntityProject, OpUpdate}))
	assert.Equal(t, 2, cs.Count(Step{EntityResource, OpCreate}))
	assert.Equal(t, 1, cs.Count(Step{EntityResource, OpDelete}))
	assert.Equal(t, 0, cs.Count(Step{EntityPhase, OpUpdate}))
	assert.Equal(t, 1, cs.Count(Step{EntityHoliday, OpUpdate}))
}

func TestChangeSet_ProposedManagers(t *testing.T) {
	boss := "boss"
	cs := &ChangeSet{
		Resources: Collection[ResourceInput]{
			Created: []ResourceInput{{ID: "new", ManagerResourceID: &boss}},
			Updated: []ResourceInput{{ID: "old"}},
		},
	}

	edges := cs.ProposedManagers()

	require.Len(t, edges, 2)
	assert.Equal(t, "new", edges[0].ResourceID)
	assert.Equal(t, "boss", *edges[0].ManagerID)
	assert.Equal(t, "old", edges[1].ResourceID)
	assert.Nil(t, edges[1].ManagerID)
}

func TestChangeSet_TouchedResources(t *testing.T) {
	phase := PhaseInput{
		ID:                  "p1",
		ResourceAssignments: []AssignmentInput{{ResourceID: "r2"}},
		Tasks: []TaskInput{
			{ID: "t1", ResourceAssignments: []AssignmentInput{{ResourceID: "r1"}, {ResourceID: "r3"}}},
		},
	}
	cs := &ChangeSet{
		Resources: Collection[ResourceInput]{Updated: []ResourceInput{{ID: "r1"}}},
		Phases:    Collection[PhaseInput]{Created: []PhaseInput{phase}},
	}

	assert.Equal(t, []string{"r1", "r2", "r3"}, cs.TouchedResources())
}
