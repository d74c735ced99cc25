// Package hierarchy keeps the resource reporting lines of a project acyclic.
//
// Resources are held in an arena indexed by identity. Manager links are
// indexes into the arena, so a walk up the chain is a bounded loop over
// integers and terminates even when stored data already contains a cycle.
package hierarchy

import (
	"fmt"

	apperrors "planner-backend/internal/errors"
)

const noManager = -1

type node struct {
	id      string
	manager int
	member  bool
}

// Forest is the reporting-line graph of one project.
type Forest struct {
	nodes []node
	index map[string]int
}

// Edge is a resource and the manager it reports to. A nil ManagerID means the
// resource is at the top of its tree.
type Edge struct {
	ResourceID string
	ManagerID  *string
}

// NewForest builds a forest from the given edges. Every listed resource is a
// member of the project; managers that are not themselves listed are added as
// roots but stay outside it.
func NewForest(edges []Edge) *Forest {
	f := &Forest{
		nodes: make([]node, 0, len(edges)),
		index: make(map[string]int, len(edges)),
	}
	f.Admit(resourceIDs(edges)...)
	for _, e := range edges {
		f.Set(e.ResourceID, e.ManagerID)
	}
	return f
}

func (f *Forest) ensure(id string) int {
	if i, ok := f.index[id]; ok {
		return i
	}
	f.nodes = append(f.nodes, node{id: id, manager: noManager})
	f.index[id] = len(f.nodes) - 1
	return len(f.nodes) - 1
}

// Admit marks resources as members of the project, e.g. resources created
// by the batch under check.
func (f *Forest) Admit(ids ...string) {
	for _, id := range ids {
		f.nodes[f.ensure(id)].member = true
	}
}

func resourceIDs(edges []Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ResourceID
	}
	return ids
}

// Set records managerID as the manager of resourceID without checking it.
func (f *Forest) Set(resourceID string, managerID *string) {
	i := f.ensure(resourceID)
	if managerID == nil || *managerID == "" {
		f.nodes[i].manager = noManager
		return
	}
	f.nodes[i].manager = f.ensure(*managerID)
}

// Check reports whether resourceID may report to newManagerID. The walk
// starts at newManagerID and follows manager links until it reaches
// resourceID (cycle), revisits a node (the stored chain is already cyclic) or
// reaches a resource without a manager (accepted). A manager unknown to the
// forest ends the walk; the foreign key decides whether it exists.
func (f *Forest) Check(resourceID, newManagerID string) error {
	if newManagerID == "" {
		return nil
	}
	path := []string{newManagerID}
	if newManagerID == resourceID {
		return &apperrors.HierarchyCycleError{ResourceID: resourceID, ManagerID: newManagerID, Path: []string{resourceID, resourceID}}
	}

	cur, ok := f.index[newManagerID]
	if !ok {
		return nil
	}
	visited := make(map[int]struct{}, 8)
	for {
		visited[cur] = struct{}{}
		next := f.nodes[cur].manager
		if next == noManager {
			return nil
		}
		nextID := f.nodes[next].id
		path = append(path, nextID)
		if nextID == resourceID {
			return &apperrors.HierarchyCycleError{ResourceID: resourceID, ManagerID: newManagerID, Path: path}
		}
		if _, seen := visited[next]; seen {
			return &apperrors.HierarchyCycleError{ResourceID: resourceID, ManagerID: newManagerID, Path: path, Corrupt: true}
		}
		cur = next
	}
}

// Apply checks and records a batch of proposed edges. A manager must be a
// member of the project. Every edge is then written into the forest so that
// edges proposed together are checked against each other, and each edge with
// a manager is checked. The first failing edge is returned.
func (f *Forest) Apply(proposed []Edge) error {
	for _, e := range proposed {
		if e.ManagerID == nil || *e.ManagerID == "" {
			continue
		}
		if i, ok := f.index[*e.ManagerID]; !ok || !f.nodes[i].member {
			return &apperrors.ConflictError{
				Kind:    apperrors.KindForeignKey,
				Entity:  "resource",
				Fields:  []string{"managerResourceId"},
				Values:  map[string]string{"managerResourceId": *e.ManagerID},
				Message: fmt.Sprintf("manager %s of resource %s is not a resource of this project", *e.ManagerID, e.ResourceID),
				Hint:    "reload the project and retry",
			}
		}
	}
	for _, e := range proposed {
		f.Set(e.ResourceID, e.ManagerID)
	}
	for _, e := range proposed {
		if e.ManagerID == nil || *e.ManagerID == "" {
			continue
		}
		// detach the edge under test so the walk sees the chain above the manager
		f.Set(e.ResourceID, nil)
		err := f.Check(e.ResourceID, *e.ManagerID)
		f.Set(e.ResourceID, e.ManagerID)
		if err != nil {
			return err
		}
	}
	return nil
}
