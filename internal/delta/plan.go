package delta

import "planner-backend/internal/hierarchy"

// EntityKind names a collection of a change-set
type EntityKind string

const (
	EntityProject   EntityKind = "project"
	EntityResource  EntityKind = "resources"
	EntityPhase     EntityKind = "phases"
	EntityMilestone EntityKind = "milestones"
	EntityHoliday   EntityKind = "holidays"
)

// Operation is the kind of write a step performs
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Step is one write of the plan
type Step struct {
	Entity    EntityKind
	Operation Operation
}

// String returns "entity/operation", the name used in logs and responses
func (s Step) String() string {
	return string(s.Entity) + "/" + string(s.Operation)
}

// steps is the write order. Parents are written before children, and deletes
// come first inside each entity so that a record removed and recreated under
// the same identity in one batch does not collide with itself.
var steps = []Step{
	{EntityProject, OpUpdate},
	{EntityResource, OpDelete},
	{EntityResource, OpCreate},
	{EntityResource, OpUpdate},
	{EntityPhase, OpDelete},
	{EntityPhase, OpCreate},
	{EntityPhase, OpUpdate},
	{EntityMilestone, OpDelete},
	{EntityMilestone, OpCreate},
	{EntityMilestone, OpUpdate},
	{EntityHoliday, OpDelete},
	{EntityHoliday, OpCreate},
	{EntityHoliday, OpUpdate},
}

// Plan returns the ordered steps for applying a change-set. The sequence is
// the same for every change-set; steps with nothing to do are no-ops.
func Plan() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Count returns how many records of the change-set a step touches. The
// project step counts 1 when the patch sets any field.
func (cs *ChangeSet) Count(s Step) int {
	switch s.Entity {
	case EntityProject:
		if cs.Project.HasChanges() {
			return 1
		}
		return 0
	case EntityResource:
		return pick(s.Operation, len(cs.Resources.Created), len(cs.Resources.Updated), len(cs.Resources.Deleted))
	case EntityPhase:
		return pick(s.Operation, len(cs.Phases.Created), len(cs.Phases.Updated), len(cs.Phases.Deleted))
	case EntityMilestone:
		return pick(s.Operation, len(cs.Milestones.Created), len(cs.Milestones.Updated), len(cs.Milestones.Deleted))
	case EntityHoliday:
		return pick(s.Operation, len(cs.Holidays.Created), len(cs.Holidays.Updated), len(cs.Holidays.Deleted))
	}
	return 0
}

func pick(op Operation, created, updated, deleted int) int {
	switch op {
	case OpCreate:
		return created
	case OpUpdate:
		return updated
	case OpDelete:
		return deleted
	}
	return 0
}

// ProposedManagers returns every manager edge the change-set writes, created
// resources first. The cycle guard checks these before any resource is stored.
func (cs *ChangeSet) ProposedManagers() []hierarchy.Edge {
	out := make([]hierarchy.Edge, 0, len(cs.Resources.Created)+len(cs.Resources.Updated))
	for _, r := range cs.Resources.Created {
		out = append(out, hierarchy.Edge{ResourceID: r.ID, ManagerID: r.ManagerResourceID})
	}
	for _, r := range cs.Resources.Updated {
		out = append(out, hierarchy.Edge{ResourceID: r.ID, ManagerID: r.ManagerResourceID})
	}
	return out
}

// TouchedResources returns the ids of resources whose allocation may change:
// resources written by the batch and resources named in any assignment.
func (cs *ChangeSet) TouchedResources() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	for _, r := range cs.Resources.Created {
		add(r.ID)
	}
	for _, r := range cs.Resources.Updated {
		add(r.ID)
	}
	for _, list := range [][]PhaseInput{cs.Phases.Created, cs.Phases.Updated} {
		for _, p := range list {
			for _, a := range p.ResourceAssignments {
				add(a.ResourceID)
			}
			for _, t := range p.Tasks {
				for _, a := range t.ResourceAssignments {
					add(a.ResourceID)
				}
			}
		}
	}
	return out
}
