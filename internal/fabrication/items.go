package fabrication

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/JaimeStill/loom/internal/requirements"
)

// generateItems fabricates requirement and test case items. When seed
// requirements are supplied, one item is created per stored requirement
// and the returned map records which global IDs trace to which rows.
func generateItems(
	rng *rand.Rand,
	f *gofakeit.Faker,
	seeds []requirements.Requirement,
) ([]Item, map[uuid.UUID][]string) {
	if len(seeds) > 0 {
		return seededItems(rng, f, seeds)
	}

	now := time.Now()
	count := intBetween(rng, 80, 100)
	items := make([]Item, 0, count+60)

	for i := 0; i < count; i++ {
		reqID := fmt.Sprintf("SYS-%03d", i+1)

		var name, text string
		if i < len(aeroRequirements) {
			text = aeroRequirements[i]
			name = strings.SplitN(text, " shall ", 2)[0] + " Requirement"
		} else {
			subsystem := pick(rng, subsystems)
			name = fmt.Sprintf("%s System Requirement %s", subsystem, reqID)
			text = fmt.Sprintf(
				"The %s system shall meet performance and safety requirements as specified in DO-178C and ARP4754A standards.",
				subsystem,
			)
		}

		items = append(items, Item{
			ID:           uuid.New(),
			GlobalID:     "ITEM-" + reqID,
			DocumentKey:  "SRD-2024",
			ItemType:     ItemTypeRequirement,
			Name:         name,
			Description:  text + " " + f.Sentence(30),
			Status:       pick(rng, itemStatuses),
			CreatedDate:  f.DateRange(now.AddDate(-1, 0, 0), now),
			ModifiedDate: f.DateRange(now.AddDate(0, 0, -30), now),
			CreatedBy:    f.Name(),
			ModifiedBy:   f.Name(),
			Fields: map[string]any{
				"priority":            pick(rng, priorities),
				"verification_method": pick(rng, verificationMethods),
				"safety_level":        pick(rng, safetyLevels),
				"certification_basis": pick(rng, certificationBases),
			},
		})
	}

	testCount := intBetween(rng, 40, 60)
	for i := 0; i < testCount; i++ {
		testID := fmt.Sprintf("FTC-%03d", i+1)

		var name, desc string
		if i < len(aeroTestCases) {
			name = aeroTestCases[i]
			desc = name + ". " + f.Sentence(20)
		} else {
			system := pick(rng, subsystems)
			name = fmt.Sprintf("%s System Verification Test %s", system, testID)
			desc = fmt.Sprintf("Verification test for %s system compliance with certification requirements.", system)
		}

		items = append(items, Item{
			ID:           uuid.New(),
			GlobalID:     "ITEM-" + testID,
			DocumentKey:  "FTP-2024",
			ItemType:     ItemTypeTestCase,
			Name:         name,
			Description:  desc,
			Status:       pick(rng, testStatuses),
			CreatedDate:  f.DateRange(now.AddDate(0, -8, 0), now),
			ModifiedDate: f.DateRange(now.AddDate(0, 0, -14), now),
			CreatedBy:    f.Name(),
			ModifiedBy:   f.Name(),
			Fields: map[string]any{
				"test_type":     pick(rng, []string{"ground_test", "flight_test", "simulation", "rig_test", "bench_test"}),
				"test_phase":    pick(rng, testPhases),
				"test_facility": pick(rng, testFacilities),
				"risk_level":    pick(rng, riskLevels),
			},
		})
	}

	return items, nil
}

func seededItems(
	rng *rand.Rand,
	f *gofakeit.Faker,
	seeds []requirements.Requirement,
) ([]Item, map[uuid.UUID][]string) {
	now := time.Now()
	refs := make(map[uuid.UUID][]string, len(seeds))
	items := make([]Item, 0, len(seeds)+50)

	for _, req := range seeds {
		item := Item{
			ID:           uuid.New(),
			GlobalID:     req.RequirementID,
			DocumentKey:  documentKey(req.SourceDocument),
			ItemType:     ItemTypeRequirement,
			Name:         req.Title,
			Description:  req.Text,
			Status:       pick(rng, itemStatuses),
			CreatedDate:  f.DateRange(now.AddDate(-1, 0, 0), now),
			ModifiedDate: f.DateRange(now.AddDate(0, 0, -30), now),
			CreatedBy:    f.Name(),
			ModifiedBy:   f.Name(),
			Fields: map[string]any{
				"priority":            req.Priority,
				"verification_method": fallback(req.VerificationMethod, "test"),
				"category":            req.Category,
				"source_page":         req.SourcePage,
				"tags":                req.Tags,
				"source_document":     req.SourceDocument,
			},
		}

		items = append(items, item)
		refs[req.ID] = append(refs[req.ID], item.GlobalID)
	}

	testCount := len(seeds) / 2
	if testCount > 50 {
		testCount = 50
	}

	for i := 0; i < testCount; i++ {
		related := seeds[rng.IntN(len(seeds))]
		globalID := fmt.Sprintf("TC-%03d", i+1)

		items = append(items, Item{
			ID:           uuid.New(),
			GlobalID:     globalID,
			DocumentKey:  "TEST-PLAN-2024",
			ItemType:     ItemTypeTestCase,
			Name:         "Verify " + truncate(related.Title, 50),
			Description:  fmt.Sprintf("Test case to verify requirement %s: %s", related.RequirementID, truncate(related.Text, 200)),
			Status:       pick(rng, testStatuses),
			CreatedDate:  f.DateRange(now.AddDate(0, -8, 0), now),
			ModifiedDate: f.DateRange(now.AddDate(0, 0, -14), now),
			CreatedBy:    f.Name(),
			ModifiedBy:   f.Name(),
			Fields: map[string]any{
				"test_type":           fallback(related.VerificationMethod, "test"),
				"test_phase":          pick(rng, testPhases),
				"test_facility":       pick(rng, seededTestFacilities),
				"risk_level":          pick(rng, riskLevels),
				"related_requirement": related.RequirementID,
				"category":            related.Category,
			},
		})

		refs[related.ID] = append(refs[related.ID], globalID)
	}

	return items, refs
}

func documentKey(filename string) string {
	key := strings.TrimSuffix(filename, ".pdf")
	return strings.ReplaceAll(key, "_", "-")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
