package view

import "github.com/aurceive/genshin-dashboard/internal/domain"

type RegionNode struct {
	Region   domain.Region
	Children []RegionNode
	// DisplayExploration is what the dashboard shows for this node. For a
	// container root (own value 0, has children) it is the children's mean.
	DisplayExploration float64
}

// RegionTree groups regions under their ParentID at any depth. Regions whose
// parent is not in the list, and regions only reachable through a ParentID
// cycle, are promoted to roots, so every input region appears exactly once.
// Input order is kept at every level.
func RegionTree(regions []domain.Region) []RegionNode {
	present := make(map[int]bool, len(regions))
	for _, r := range regions {
		present[r.ID] = true
	}
	children := map[int][]domain.Region{}
	var roots []domain.Region
	for _, r := range regions {
		if r.ParentID == 0 || !present[r.ParentID] || r.ParentID == r.ID {
			roots = append(roots, r)
			continue
		}
		children[r.ParentID] = append(children[r.ParentID], r)
	}

	visited := make(map[int]bool, len(regions))
	var build func(r domain.Region) RegionNode
	build = func(r domain.Region) RegionNode {
		visited[r.ID] = true
		node := RegionNode{Region: r, DisplayExploration: r.Exploration}
		for _, c := range children[r.ID] {
			if visited[c.ID] {
				continue
			}
			node.Children = append(node.Children, build(c))
		}
		if r.Exploration == 0 && len(node.Children) > 0 {
			sum := 0.0
			for _, c := range node.Children {
				sum += c.DisplayExploration
			}
			node.DisplayExploration = sum / float64(len(node.Children))
		}
		return node
	}

	out := make([]RegionNode, 0, len(roots))
	for _, r := range roots {
		if visited[r.ID] {
			continue
		}
		out = append(out, build(r))
	}
	// Cycles: none of their members is a root.
	for _, r := range regions {
		if !visited[r.ID] {
			out = append(out, build(r))
		}
	}
	return out
}

// WalkRegions visits every node depth-first, parents before children.
func WalkRegions(tree []RegionNode, fn func(n RegionNode, depth int)) {
	var walk func(nodes []RegionNode, depth int)
	walk = func(nodes []RegionNode, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			walk(n.Children, depth+1)
		}
	}
	walk(tree, 0)
}

// AchievementProgress counts completed categories.
func AchievementProgress(list []domain.Achievement) (completed, total int) {
	for _, a := range list {
		if a.Complete() {
			completed++
		}
	}
	return completed, len(list)
}
