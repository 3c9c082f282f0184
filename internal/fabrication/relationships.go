package fabrication

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// generateRelationships links requirements to the test cases that verify
// them. A gap fraction of requirements is deliberately left unlinked so
// the data exhibits realistic traceability gaps.
func generateRelationships(rng *rand.Rand, f *gofakeit.Faker, items []Item, gap float64) []ItemRelationship {
	now := time.Now()

	var reqs, tests []Item
	for _, item := range items {
		switch item.ItemType {
		case ItemTypeRequirement:
			reqs = append(reqs, item)
		case ItemTypeTestCase:
			tests = append(tests, item)
		}
	}

	if len(tests) == 0 {
		return nil
	}

	var rels []ItemRelationship
	for _, req := range reqs {
		if rng.Float64() <= gap {
			continue
		}

		for _, test := range sampleOf(rng, tests, intBetween(rng, 1, 3)) {
			rels = append(rels, ItemRelationship{
				ID:               uuid.New(),
				FromItem:         req.ID,
				ToItem:           test.ID,
				RelationshipType: "verifies",
				CreatedDate:      f.DateRange(now.AddDate(0, -6, 0), now),
			})
		}
	}

	return rels
}

// generateIssueLinks cross-links issues; a gap fraction stays unlinked.
func generateIssueLinks(rng *rand.Rand, issues []Issue, gap float64) []IssueLink {
	if len(issues) < 2 {
		return nil
	}

	var links []IssueLink
	for _, issue := range issues {
		if rng.Float64() <= gap {
			continue
		}

		linked := pick(rng, issues)
		for linked.ID == issue.ID {
			linked = pick(rng, issues)
		}

		links = append(links, IssueLink{
			ID:            uuid.New(),
			IssueID:       issue.ID,
			LinkedIssueID: linked.ID,
			LinkType:      pick(rng, []string{"blocks", "relates", "implements", "depends"}),
		})
	}

	return links
}

// generateBOM builds a shallow assembly hierarchy over the leading parts.
// Find numbers are sequential within each parent.
func generateBOM(rng *rand.Rand, parts []Part) []BOMEntry {
	parents := parts
	if len(parents) > 10 {
		parents = parents[:10]
	}

	var bom []BOMEntry
	for _, parent := range parents {
		children := sampleOf(rng, parts, intBetween(rng, 2, 5))

		find := 0
		for _, child := range children {
			if child.ID == parent.ID {
				continue
			}

			find++
			bom = append(bom, BOMEntry{
				ID:         uuid.New(),
				ParentPart: parent.Number,
				ChildPart:  child.Number,
				Quantity:   float64(intBetween(rng, 1, 10)),
				Unit:       pick(rng, bomUnits),
				FindNumber: fmt.Sprintf("%02d", find),
			})
		}
	}

	return bom
}
