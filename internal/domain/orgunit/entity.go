package orgunit

import "time"

// OrgUnit is a node in the organizational hierarchy. Units without a parent
// are roots of the tree.
type OrgUnit struct {
	ID          string
	Name        string
	Description *string
	ParentID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TreeNode is an OrgUnit together with its resolved children.
type TreeNode struct {
	OrgUnit
	Children []*TreeNode
}

// BuildTree assembles a flat unit list into its forest of root nodes.
// Children keep the input order.
func BuildTree(units []OrgUnit) []*TreeNode {
	nodes := make(map[string]*TreeNode, len(units))
	for i := range units {
		nodes[units[i].ID] = &TreeNode{OrgUnit: units[i]}
	}

	var roots []*TreeNode
	for i := range units {
		node := nodes[units[i].ID]
		if units[i].ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*units[i].ParentID]
		if !ok {
			// orphaned parent reference, surface the unit at the root
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}
