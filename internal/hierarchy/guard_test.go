package hierarchy

import (
	"testing"

	apperrors "planner-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

// chain builds A <- B <- C (C reports to B, B reports to A)
func chain() *Forest {
	return NewForest([]Edge{
		{ResourceID: "A"},
		{ResourceID: "B", ManagerID: ptr("A")},
		{ResourceID: "C", ManagerID: ptr("B")},
	})
}

func TestCheck_RejectsCycleThroughChain(t *testing.T) {
	f := chain()

	err := f.Check("A", "C")

	require.Error(t, err)
	var cycleErr *apperrors.HierarchyCycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, "A", cycleErr.ResourceID)
	assert.Equal(t, "C", cycleErr.ManagerID)
	assert.Equal(t, []string{"C", "B", "A"}, cycleErr.Path)
	assert.False(t, cycleErr.Corrupt)
}

func TestCheck_RejectsSelfLoop(t *testing.T) {
	f := NewForest([]Edge{{ResourceID: "r2"}})

	err := f.Check("r2", "r2")

	var cycleErr *apperrors.HierarchyCycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, "r2", cycleErr.ResourceID)
}

func TestCheck_AcceptsChainEndingAtRoot(t *testing.T) {
	f := chain()
	f.Set("D", nil)

	assert.NoError(t, f.Check("D", "C"))
	assert.NoError(t, f.Check("C", "A"))
}

func TestCheck_EmptyManagerIsAccepted(t *testing.T) {
	assert.NoError(t, chain().Check("A", ""))
}

func TestCheck_UnknownManagerEndsWalk(t *testing.T) {
	assert.NoError(t, chain().Check("A", "ghost"))
}

func TestCheck_DetectsCorruptStoredChain(t *testing.T) {
	// m and n already point at each other
	f := NewForest([]Edge{
		{ResourceID: "m", ManagerID: ptr("n")},
		{ResourceID: "n", ManagerID: ptr("m")},
		{ResourceID: "x"},
	})

	err := f.Check("x", "m")

	var cycleErr *apperrors.HierarchyCycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.True(t, cycleErr.Corrupt)
	assert.Equal(t, []string{"m", "n", "m"}, cycleErr.Path)
}

func TestApply_ChecksProposalsAgainstEachOther(t *testing.T) {
	f := NewForest([]Edge{{ResourceID: "p"}, {ResourceID: "q"}})

	// each edge is fine on its own, together they form p -> q -> p
	err := f.Apply([]Edge{
		{ResourceID: "p", ManagerID: ptr("q")},
		{ResourceID: "q", ManagerID: ptr("p")},
	})

	assert.True(t, apperrors.IsHierarchyCycle(err))
}

func TestApply_AcceptsReparenting(t *testing.T) {
	f := chain()

	// flip the chain: A now reports to D, C moves under A
	f.Admit("D")
	err := f.Apply([]Edge{
		{ResourceID: "D"},
		{ResourceID: "A", ManagerID: ptr("D")},
		{ResourceID: "C", ManagerID: ptr("A")},
	})

	require.NoError(t, err)
	// C now sits below A, so A may not report to C
	assert.True(t, apperrors.IsHierarchyCycle(f.Check("A", "C")))
}

func TestApply_ClearingManagerBreaksCycleCandidate(t *testing.T) {
	f := chain()

	err := f.Apply([]Edge{
		{ResourceID: "B", ManagerID: nil},
		{ResourceID: "A", ManagerID: ptr("C")},
	})

	assert.NoError(t, err)
}

func TestApply_RejectsManagerOutsideProject(t *testing.T) {
	// b1 is known only as the manager of a stored edge, it is not a member
	f := NewForest([]Edge{{ResourceID: "a1", ManagerID: ptr("b1")}})

	err := f.Apply([]Edge{{ResourceID: "a1", ManagerID: ptr("x9")}})

	var conflictErr *apperrors.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, apperrors.KindForeignKey, conflictErr.Kind)
	assert.Equal(t, "resource", conflictErr.Entity)
	assert.Equal(t, []string{"managerResourceId"}, conflictErr.Fields)
	assert.Equal(t, "x9", conflictErr.Values["managerResourceId"])

	// a resource of another project closing a loop through this one
	err = NewForest([]Edge{{ResourceID: "a1"}}).Apply([]Edge{
		{ResourceID: "b1", ManagerID: ptr("a1")},
		{ResourceID: "a1", ManagerID: ptr("b1")},
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestApply_AdmittedResourcesMayManage(t *testing.T) {
	f := NewForest([]Edge{{ResourceID: "a1"}})
	f.Admit("n1")

	err := f.Apply([]Edge{
		{ResourceID: "n1"},
		{ResourceID: "a1", ManagerID: ptr("n1")},
	})

	assert.NoError(t, err)
}
