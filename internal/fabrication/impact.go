package fabrication

import (
	"fmt"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	minImpactDepth = 1
	maxImpactDepth = 5
)

// Impact fabricates an impact analysis tree rooted at the given entity.
// The root resolves against generated items first, then issues; unknown
// IDs get a placeholder requirement so the analysis always renders.
// Depth is clamped to [1, 5].
func (g *Generator) Impact(entityID string, depth int) ImpactResult {
	if depth < minImpactDepth {
		depth = minImpactDepth
	}
	if depth > maxImpactDepth {
		depth = maxImpactDepth
	}

	root := g.resolveRoot(entityID)
	tree := impactNodes(depth, 0)

	return ImpactResult{
		Root:          root,
		Depth:         depth,
		TotalImpacted: countNodes(tree),
		ImpactTree:    tree,
		GapCount:      1 + rand.IntN(5),
	}
}

func (g *Generator) resolveRoot(entityID string) ArtifactRef {
	for _, item := range g.Items {
		if item.GlobalID == entityID {
			return ArtifactRef{
				ID:     item.GlobalID,
				Type:   item.ItemType,
				Source: SourceItems,
				Title:  item.Name,
				Status: item.Status,
			}
		}
	}

	for _, issue := range g.Issues {
		if issue.Key == entityID {
			return ArtifactRef{
				ID:     issue.Key,
				Type:   "issue",
				Source: SourceIssues,
				Title:  issue.Summary,
				Status: issue.Status,
			}
		}
	}

	return ArtifactRef{
		ID:     entityID,
		Type:   ItemTypeRequirement,
		Source: SourceItems,
		Title:  "Mock Requirement " + entityID,
		Status: "approved",
	}
}

// impactNodes fabricates one level of the tree. Branching tapers from 0-4
// to 0-2 on the final level so deep analyses stay bounded.
func impactNodes(maxDepth, currentDepth int) []ImpactNode {
	if currentDepth >= maxDepth {
		return nil
	}

	branching := 5
	if currentDepth == maxDepth-1 {
		branching = 3
	}

	count := rand.IntN(branching)
	nodes := make([]ImpactNode, 0, count)

	for i := 0; i < count; i++ {
		artifact := ArtifactRef{
			ID: fmt.Sprintf(
				"MOCK-%s-%03d",
				impactPrefixes[rand.IntN(len(impactPrefixes))],
				1+rand.IntN(999),
			),
			Type:   impactTypes[rand.IntN(len(impactTypes))],
			Source: impactSources[rand.IntN(len(impactSources))],
			Title:  gofakeit.Sentence(4),
			Status: impactStatuses[rand.IntN(len(impactStatuses))],
		}

		nodes = append(nodes, ImpactNode{
			Artifact:         artifact,
			ImpactLevel:      currentDepth + 1,
			RelationshipType: impactRelations[rand.IntN(len(impactRelations))],
			Children:         impactNodes(maxDepth, currentDepth+1),
		})
	}

	return nodes
}

func countNodes(nodes []ImpactNode) int {
	count := len(nodes)
	for _, node := range nodes {
		count += countNodes(node.Children)
	}
	return count
}

var (
	impactPrefixes  = []string{"REQ", "TC", "ENG"}
	impactTypes     = []string{"requirement", "test", "issue", "part"}
	impactSources   = []string{SourceItems, SourceIssues, SourceParts}
	impactStatuses  = []string{"draft", "approved", "in_progress", "released"}
	impactRelations = []string{"depends_on", "tests", "implements", "uses"}
)
