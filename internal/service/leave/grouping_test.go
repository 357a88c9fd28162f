package leave

import (
	"testing"

	"github.com/offisbridge/backoffice-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByYear(t *testing.T) {
	t.Parallel()

	leaves := []leave.Leave{
		{ID: "a", StartDate: "2024-03-01", EndDate: "2024-03-02", Days: 2, Status: leave.StatusApproved},
		{ID: "b", StartDate: "2025-01-10", EndDate: "2025-01-10", Days: 1, Status: leave.StatusApproved},
		{ID: "c", StartDate: "2024-07-15", EndDate: "2024-07-16", Days: 2, Status: leave.StatusRejected},
		{ID: "d", StartDate: "2025-05-02", EndDate: "2025-05-04", Days: 3, Status: leave.StatusPending},
	}

	groups := GroupByYear(leaves)
	require.Len(t, groups, 2)

	// Newest year first.
	assert.Equal(t, 2025, groups[0].Year)
	assert.Equal(t, 2024, groups[1].Year)

	// Only approved leaves count toward used days.
	assert.Equal(t, 1, groups[0].UsedDays)
	assert.Equal(t, 2, groups[1].UsedDays)

	// Input order is preserved inside a bucket.
	require.Len(t, groups[0].Leaves, 2)
	assert.Equal(t, "b", groups[0].Leaves[0].ID)
	assert.Equal(t, "d", groups[0].Leaves[1].ID)
	require.Len(t, groups[1].Leaves, 2)
	assert.Equal(t, "a", groups[1].Leaves[0].ID)
	assert.Equal(t, "c", groups[1].Leaves[1].ID)
}

func TestGroupByYear_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupByYear(nil))
}
