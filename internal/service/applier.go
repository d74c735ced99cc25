package service

import (
	"context"
	"fmt"

	"planner-backend/internal/allocation"
	"planner-backend/internal/database/models"
	"planner-backend/internal/delta"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/hierarchy"
	"planner-backend/internal/logger"
	"planner-backend/internal/repository"
)

var resourceCreate = delta.Step{Entity: delta.EntityResource, Operation: delta.OpCreate}

// DeltaApplier writes a validated change-set through transaction-bound
// repositories, one plan step at a time. Store errors are returned wrapped
// but otherwise untouched; classifying them is the caller's job.
//
// Identities are global, so every record the batch references or skips as
// already existing must belong to the target project.
type DeltaApplier struct{}

// NewDeltaApplier creates a new delta applier
func NewDeltaApplier() *DeltaApplier {
	return &DeltaApplier{}
}

// Apply runs every plan step in order and returns the rows written per step.
// It must be called inside a transaction: a failing step leaves earlier steps
// for the caller to roll back.
func (a *DeltaApplier) Apply(ctx context.Context, repos *repository.Repositories, projectID string, cs *delta.ChangeSet) (map[string]int64, error) {
	counts := make(map[string]int64, len(delta.Plan()))
	for _, step := range delta.Plan() {
		n, err := a.run(ctx, repos, projectID, cs, step)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", step, err)
		}
		counts[step.String()] = n
	}
	logger.WithContext(ctx).WithProject(projectID).WithField("counts", counts).Debug("change-set written")
	return counts, nil
}

func (a *DeltaApplier) run(ctx context.Context, repos *repository.Repositories, projectID string, cs *delta.ChangeSet, step delta.Step) (int64, error) {
	skip := cs.SkipDuplicates

	if step == resourceCreate {
		// the guard runs once, before any resource is written, and covers
		// the manager edges of both created and updated resources
		if err := a.guardHierarchy(ctx, repos.Resources, projectID, cs); err != nil {
			return 0, err
		}
	}
	if cs.Count(step) == 0 {
		return 0, nil
	}

	switch step {
	case delta.Step{Entity: delta.EntityProject, Operation: delta.OpUpdate}:
		if err := repos.Projects.UpdateFields(ctx, projectID, cs.Project.Fields()); err != nil {
			return 0, err
		}
		return 1, nil

	case delta.Step{Entity: delta.EntityResource, Operation: delta.OpDelete}:
		return repos.Resources.DeleteByIDs(ctx, projectID, cs.Resources.Deleted)

	case resourceCreate:
		rows := make([]models.Resource, 0, len(cs.Resources.Created))
		ids := make([]string, 0, len(cs.Resources.Created))
		for _, r := range cs.Resources.Created {
			rows = append(rows, r.Model(projectID))
			ids = append(ids, r.ID)
		}
		n, err := repos.Resources.CreateBatch(ctx, rows, skip)
		if err != nil || !skip {
			return n, err
		}
		return n, requireOwned(ctx, repos.Resources.OwnedIDs, projectID, ids, claimedElsewhere("resource"))

	case delta.Step{Entity: delta.EntityResource, Operation: delta.OpUpdate}:
		for _, r := range cs.Resources.Updated {
			row := r.Model(projectID)
			if err := repos.Resources.Update(ctx, &row); err != nil {
				return 0, err
			}
		}
		return int64(len(cs.Resources.Updated)), nil

	case delta.Step{Entity: delta.EntityPhase, Operation: delta.OpDelete}:
		return repos.Phases.DeleteByIDs(ctx, projectID, cs.Phases.Deleted)

	case delta.Step{Entity: delta.EntityPhase, Operation: delta.OpCreate}:
		return a.createPhases(ctx, repos, projectID, cs.Phases.Created, skip)

	case delta.Step{Entity: delta.EntityPhase, Operation: delta.OpUpdate}:
		return a.replacePhases(ctx, repos, projectID, cs.Phases.Updated)

	case delta.Step{Entity: delta.EntityMilestone, Operation: delta.OpDelete}:
		return repos.Milestones.DeleteByIDs(ctx, projectID, cs.Milestones.Deleted)

	case delta.Step{Entity: delta.EntityMilestone, Operation: delta.OpCreate}:
		rows := make([]models.Milestone, 0, len(cs.Milestones.Created))
		ids := make([]string, 0, len(cs.Milestones.Created))
		for _, m := range cs.Milestones.Created {
			rows = append(rows, m.Model(projectID))
			ids = append(ids, m.ID)
		}
		n, err := repos.Milestones.CreateBatch(ctx, rows, skip)
		if err != nil || !skip {
			return n, err
		}
		return n, requireOwned(ctx, repos.Milestones.OwnedIDs, projectID, ids, claimedElsewhere("milestone"))

	case delta.Step{Entity: delta.EntityMilestone, Operation: delta.OpUpdate}:
		for _, m := range cs.Milestones.Updated {
			row := m.Model(projectID)
			if err := repos.Milestones.Update(ctx, &row); err != nil {
				return 0, err
			}
		}
		return int64(len(cs.Milestones.Updated)), nil

	case delta.Step{Entity: delta.EntityHoliday, Operation: delta.OpDelete}:
		return repos.Holidays.DeleteByIDs(ctx, projectID, cs.Holidays.Deleted)

	case delta.Step{Entity: delta.EntityHoliday, Operation: delta.OpCreate}:
		rows := make([]models.Holiday, 0, len(cs.Holidays.Created))
		ids := make([]string, 0, len(cs.Holidays.Created))
		for _, h := range cs.Holidays.Created {
			rows = append(rows, h.Model(projectID))
			ids = append(ids, h.ID)
		}
		n, err := repos.Holidays.CreateBatch(ctx, rows, skip)
		if err != nil || !skip {
			return n, err
		}
		return n, requireOwned(ctx, repos.Holidays.OwnedIDs, projectID, ids, claimedElsewhere("holiday"))

	case delta.Step{Entity: delta.EntityHoliday, Operation: delta.OpUpdate}:
		for _, h := range cs.Holidays.Updated {
			row := h.Model(projectID)
			if err := repos.Holidays.Update(ctx, &row); err != nil {
				return 0, err
			}
		}
		return int64(len(cs.Holidays.Updated)), nil
	}

	return 0, fmt.Errorf("unknown plan step %s", step)
}

// guardHierarchy loads the stored reporting lines, which already reflect this
// batch's resource deletions, and checks every proposed manager edge against
// them and against each other. A manager must be a stored resource of the
// project or one the batch creates.
func (a *DeltaApplier) guardHierarchy(ctx context.Context, resources repository.ResourceRepositoryInterface, projectID string, cs *delta.ChangeSet) error {
	proposed := cs.ProposedManagers()
	if !hasManager(proposed) {
		return nil
	}
	edges, err := resources.ListHierarchy(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to load resource hierarchy: %w", err)
	}
	forest := hierarchy.NewForest(edges)
	for _, r := range cs.Resources.Created {
		forest.Admit(r.ID)
	}
	return forest.Apply(proposed)
}

func hasManager(edges []hierarchy.Edge) bool {
	for _, e := range edges {
		if e.ManagerID != nil && *e.ManagerID != "" {
			return true
		}
	}
	return false
}

// createPhases inserts the phases first and then all of their children, so a
// task assignment may reference a resource created earlier in the batch.
func (a *DeltaApplier) createPhases(ctx context.Context, repos *repository.Repositories, projectID string, inputs []delta.PhaseInput, skip bool) (int64, error) {
	rows := make([]models.Phase, 0, len(inputs))
	ids := make([]string, 0, len(inputs))
	var children delta.PhaseChildren
	for _, p := range inputs {
		rows = append(rows, p.Model(projectID))
		ids = append(ids, p.ID)
		children.Append(p.Children())
	}
	if err := requireAssignedResources(ctx, repos.Resources, projectID, children); err != nil {
		return 0, err
	}

	n, err := repos.Phases.CreateBatch(ctx, rows, skip)
	if err != nil {
		return 0, err
	}
	if skip {
		// a skipped phase must be this project's, or its children would land elsewhere
		if err := requireOwned(ctx, repos.Phases.OwnedIDs, projectID, ids, claimedElsewhere("phase")); err != nil {
			return 0, err
		}
	}
	c, err := repos.Phases.CreateChildren(ctx, children, skip)
	if err != nil {
		return 0, err
	}
	if skip {
		taskIDs := make([]string, len(children.Tasks))
		for i, t := range children.Tasks {
			taskIDs[i] = t.ID
		}
		if err := requireOwned(ctx, repos.Phases.OwnedTaskIDs, projectID, taskIDs, claimedElsewhere("task")); err != nil {
			return 0, err
		}
	}
	return n + c, nil
}

// replacePhases overwrites each phase and rebuilds its children from the
// payload. Children missing from the payload are gone afterwards; there is no
// task-level diff.
func (a *DeltaApplier) replacePhases(ctx context.Context, repos *repository.Repositories, projectID string, inputs []delta.PhaseInput) (int64, error) {
	ids := make([]string, 0, len(inputs))
	var children delta.PhaseChildren
	for _, p := range inputs {
		ids = append(ids, p.ID)
		children.Append(p.Children())
	}
	if err := requireAssignedResources(ctx, repos.Resources, projectID, children); err != nil {
		return 0, err
	}

	for _, p := range inputs {
		row := p.Model(projectID)
		if err := repos.Phases.Update(ctx, &row); err != nil {
			return 0, err
		}
	}
	if _, err := repos.Phases.DeleteChildren(ctx, projectID, ids); err != nil {
		return 0, err
	}
	// replacement always writes every child, so collisions are real conflicts
	c, err := repos.Phases.CreateChildren(ctx, children, false)
	if err != nil {
		return 0, err
	}
	return int64(len(inputs)) + c, nil
}

type ownedLookup func(ctx context.Context, projectID string, ids []string) ([]string, error)

// requireOwned fails with the error built by reject for the first id that is
// not part of the project.
func requireOwned(ctx context.Context, lookup ownedLookup, projectID string, ids []string, reject func(id string) error) error {
	if len(ids) == 0 {
		return nil
	}
	owned, err := lookup(ctx, projectID, ids)
	if err != nil {
		return fmt.Errorf("failed to check ownership: %w", err)
	}
	set := make(map[string]struct{}, len(owned))
	for _, id := range owned {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return reject(id)
		}
	}
	return nil
}

// requireAssignedResources checks that every assignment names a resource of
// the project. Resources created by this batch are stored by now.
func requireAssignedResources(ctx context.Context, resources repository.ResourceRepositoryInterface, projectID string, children delta.PhaseChildren) error {
	seen := make(map[string]struct{})
	var ids []string
	entity := make(map[string]string)
	add := func(id, kind string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		entity[id] = kind
	}
	for _, ta := range children.TaskAssignments {
		add(ta.ResourceID, "task resource assignment")
	}
	for _, pa := range children.PhaseAssignments {
		add(pa.ResourceID, "phase resource assignment")
	}
	return requireOwned(ctx, resources.OwnedIDs, projectID, ids, func(id string) error {
		return &apperrors.ConflictError{
			Kind:    apperrors.KindForeignKey,
			Entity:  entity[id],
			Fields:  []string{"resourceId"},
			Values:  map[string]string{"resourceId": id},
			Message: fmt.Sprintf("%s references resource %s, which is not a resource of this project", entity[id], id),
			Hint:    ownershipHint,
		}
	})
}

const ownershipHint = "refresh to sync with latest data"

// claimedElsewhere reports a create that was skipped as a duplicate although
// the existing record belongs to another project.
func claimedElsewhere(entity string) func(id string) error {
	return func(id string) error {
		return &apperrors.ConflictError{
			Kind:    apperrors.KindUniqueViolation,
			Entity:  entity,
			Fields:  []string{"id"},
			Values:  map[string]string{"id": id},
			Message: fmt.Sprintf("%s %s already exists in another project", entity, id),
			Hint:    "choose a different id",
		}
	}
}

// Warnings reports resources whose summed allocation over overlapping tasks
// exceeds the threshold after the batch. Only resources the batch touched
// are checked.
func (a *DeltaApplier) Warnings(ctx context.Context, phases repository.PhaseRepositoryInterface, projectID string, cs *delta.ChangeSet) ([]allocation.Warning, error) {
	scope := cs.TouchedResources()
	if len(scope) == 0 {
		return nil, nil
	}
	bookings, err := phases.ListBookings(ctx, projectID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return allocation.Check(bookings, scope), nil
}
