// Package feed holds the in-memory feed algorithms: reconstructing a nested
// comment thread from the flat rows a single bulk query returns, and computing
// the time-windowed karma leaderboard. Both are pure functions so they can be
// called concurrently from request handlers without locking.
package feed

import "feedboard/app/models"

// Node is one comment in a reconstructed thread. Replies preserve the order
// of the input slice, i.e. ascending creation time.
type Node struct {
	Comment *models.Comment
	Replies []*Node
}

// BuildTree converts the flat comments of one post into a forest of threads.
// The input must already be sorted by CreatedAt ascending (ID ascending on
// ties); parents do not need to appear before their children.
//
// A comment naming itself as parent is demoted to the root level. A comment
// whose parent does not exist in the input (deleted, wrong post, or part of an
// orphaned cycle) cannot be placed: it is left out of the forest and its ID is
// returned in dangling so the caller can flag the data problem. Malformed rows
// never make this fail.
func BuildTree(comments []*models.Comment) (forest []*Node, dangling []int) {
	// One pass to bucket children under their parent ID, preserving input
	// order within each bucket.
	children := make(map[int][]*models.Comment, len(comments))
	var roots []*models.Comment
	for _, c := range comments {
		switch {
		case c.ParentID == nil:
			roots = append(roots, c)
		case *c.ParentID == c.ID:
			// Self-reference has no legal placement; root fallback.
			roots = append(roots, c)
		default:
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	placed := make(map[int]bool, len(comments))
	var build func(c *models.Comment) *Node
	build = func(c *models.Comment) *Node {
		placed[c.ID] = true
		node := &Node{Comment: c}
		for _, child := range children[c.ID] {
			if placed[child.ID] {
				continue
			}
			node.Replies = append(node.Replies, build(child))
		}
		return node
	}

	forest = make([]*Node, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, build(root))
	}

	// Whatever was never reached from a root points at a missing parent.
	for _, c := range comments {
		if !placed[c.ID] {
			dangling = append(dangling, c.ID)
		}
	}

	return forest, dangling
}

// Walk visits every node of the forest in pre-order.
func Walk(forest []*Node, visit func(*Node)) {
	for _, node := range forest {
		visit(node)
		Walk(node.Replies, visit)
	}
}
