package fabrication

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/requirements"
)

// generateIssues fabricates engineering issues. A seeded run derives
// roughly a third as many issues as stored requirements from activity
// templates and records the traced rows in the returned map.
func generateIssues(
	rng *rand.Rand,
	f *gofakeit.Faker,
	seeds []requirements.Requirement,
) ([]Issue, map[uuid.UUID][]string) {
	if len(seeds) > 0 {
		return seededIssues(rng, f, seeds)
	}

	now := time.Now()
	count := intBetween(rng, 25, 35)
	issues := make([]Issue, 0, count)

	for i := 0; i < count; i++ {
		key := fmt.Sprintf("AERO-%03d", i+1)

		var summary, description string
		if i < len(aeroIssues) {
			summary = aeroIssues[i]
			description = fmt.Sprintf(
				"Issue discovered during %s. Impact: %s. Assigned to %s engineering team.",
				pick(rng, []string{"flight test", "ground test", "system integration", "qualification testing"}),
				pick(rng, []string{"Flight safety concern", "Performance degradation", "Certification compliance", "Operational limitation"}),
				pick(rng, []string{"Flight Test", "Avionics", "Propulsion", "Systems", "Structures"}),
			)
		} else {
			system := pick(rng, subsystems)
			kind := pick(rng, []string{"malfunction", "performance issue", "compliance gap", "design discrepancy", "test failure"})
			summary = fmt.Sprintf("%s system %s requires investigation", system, kind)
			description = fmt.Sprintf("Engineering investigation required for %s system %s. Coordinate with certification team.", system, kind)
		}

		var assignee *string
		if rng.Float64() > 0.15 {
			name := f.Name()
			assignee = &name
		}

		issues = append(issues, Issue{
			ID:          uuid.New(),
			Key:         key,
			Summary:     summary,
			Description: description,
			IssueType:   pick(rng, []string{"defect", "flight_test_issue", "certification_task", "design_change", "compliance_review"}),
			Status:      pick(rng, issueStatuses),
			Priority:    pick(rng, priorities),
			Assignee:    assignee,
			Reporter:    f.Name(),
			Created:     f.DateRange(now.AddDate(0, -6, 0), now),
			Updated:     f.DateRange(now.AddDate(0, 0, -7), now),
			Labels:      sampleOf(rng, issueLabels, intBetween(rng, 1, 4)),
		})
	}

	return issues, nil
}

func seededIssues(
	rng *rand.Rand,
	f *gofakeit.Faker,
	seeds []requirements.Requirement,
) ([]Issue, map[uuid.UUID][]string) {
	now := time.Now()

	count := len(seeds) / 3
	if count > 30 {
		count = 30
	}

	refs := make(map[uuid.UUID][]string, count)
	issues := make([]Issue, 0, count)
	selected := sampleOf(rng, seeds, count)

	for i, req := range selected {
		key := fmt.Sprintf("GOES-%03d", i+1)
		template := pick(rng, seededIssueTemplates)
		summary := fmt.Sprintf(template.summary, req.RequirementID)
		description := fmt.Sprintf(template.description, req.RequirementID, truncate(req.Title, 100))

		switch req.Category {
		case "instrument":
			description += "\n\nInstrument-specific considerations:\n- Hardware/software integration\n- Calibration procedures\n- Performance verification"
		case "data":
			description += "\n\nData processing considerations:\n- Algorithm implementation\n- Data format specifications\n- Quality control procedures"
		}

		var assignee *string
		if rng.Float64() > 0.2 {
			name := f.Name()
			assignee = &name
		}

		issues = append(issues, Issue{
			ID:          uuid.New(),
			Key:         key,
			Summary:     summary,
			Description: description,
			IssueType:   pick(rng, seededIssueTypes),
			Status:      pick(rng, issueStatuses),
			Priority:    fallback(req.Priority, "medium"),
			Assignee:    assignee,
			Reporter:    f.Name(),
			Created:     f.DateRange(now.AddDate(0, -6, 0), now),
			Updated:     f.DateRange(now.AddDate(0, 0, -7), now),
			Labels:      append(append([]string{}, req.Tags...), req.Category, "requirement-based"),
		})

		refs[req.ID] = append(refs[req.ID], key)
	}

	return issues, refs
}
