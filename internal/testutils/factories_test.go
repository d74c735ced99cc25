package testutils

import (
	"testing"

	"planner-backend/internal/delta"

	"github.com/stretchr/testify/assert"
)

func TestChangeSetFactoryProducesValidPayloads(t *testing.T) {
	f := NewFactorySet().ChangeSet
	cs := &delta.ChangeSet{}
	cs.Resources.Created = []delta.ResourceInput{f.Resource("r1"), f.ResourceReportingTo("r2", "r1")}
	cs.Phases.Created = []delta.PhaseInput{f.PhaseWithTasks("p1", f.Task("t1", 50, "r1", "r2"))}
	cs.Milestones.Created = []delta.MilestoneInput{f.Milestone("m1")}
	cs.Holidays.Created = []delta.HolidayInput{f.Holiday("h1")}

	assert.NoError(t, delta.Validate(delta.NewValidator(), cs))
}

func TestProjectFactory(t *testing.T) {
	f := NewProjectFactory()

	p := f.WithName("owner-1", "Migration")

	assert.Equal(t, "owner-1", p.OwnerID)
	assert.Equal(t, "Migration", p.Name)
	assert.NotEqual(t, f.Create().Name, f.Create().Name)
}
