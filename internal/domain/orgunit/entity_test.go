package orgunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildTree(t *testing.T) {
	units := []OrgUnit{
		{ID: "hq", Name: "Headquarters"},
		{ID: "eng", Name: "Engineering", ParentID: strPtr("hq")},
		{ID: "backend", Name: "Backend", ParentID: strPtr("eng")},
		{ID: "frontend", Name: "Frontend", ParentID: strPtr("eng")},
		{ID: "ops", Name: "Operations", ParentID: strPtr("hq")},
		{ID: "branch", Name: "Branch Office"},
	}

	roots := BuildTree(units)
	require.Len(t, roots, 2)

	hq := roots[0]
	assert.Equal(t, "hq", hq.ID)
	require.Len(t, hq.Children, 2)
	assert.Equal(t, "eng", hq.Children[0].ID)
	assert.Equal(t, "ops", hq.Children[1].ID)

	eng := hq.Children[0]
	require.Len(t, eng.Children, 2)
	assert.Equal(t, "backend", eng.Children[0].ID)
	assert.Equal(t, "frontend", eng.Children[1].ID)

	assert.Equal(t, "branch", roots[1].ID)
	assert.Empty(t, roots[1].Children)
}

func TestBuildTreeOrphanedParent(t *testing.T) {
	units := []OrgUnit{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: strPtr("missing")},
	}

	roots := BuildTree(units)
	require.Len(t, roots, 2)
	assert.Equal(t, "a", roots[0].ID)
	assert.Equal(t, "b", roots[1].ID)
}

func TestBuildTreeEmpty(t *testing.T) {
	assert.Empty(t, BuildTree(nil))
}
