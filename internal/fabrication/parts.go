package fabrication

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// generateParts fabricates PLM part records. The seeded variant uses the
// mission part catalogue verbatim; the unseeded variant draws a random
// volume over the generic aerospace catalogue.
func generateParts(rng *rand.Rand, f *gofakeit.Faker, seeded bool) []Part {
	now := time.Now()

	if seeded {
		parts := make([]Part, 0, len(goesParts))
		for i, tpl := range goesParts {
			parts = append(parts, Part{
				ID:             uuid.New(),
				Number:         fmt.Sprintf("GOES-%04d", i+1000),
				Name:           tpl.name,
				Description:    tpl.description,
				Version:        partVersion(rng),
				State:          pick(rng, partStates),
				CreatedBy:      f.Name(),
				CreatedDate:    f.DateRange(now.AddDate(-2, 0, 0), now.AddDate(0, -6, 0)),
				ModifiedDate:   f.DateRange(now.AddDate(0, 0, -30), now),
				Classification: pick(rng, []string{"instrument", "spacecraft", "ground", "electrical", "mechanical"}),
			})
		}
		return parts
	}

	count := intBetween(rng, 15, 25)
	parts := make([]Part, 0, count)

	for i := 0; i < count; i++ {
		var name, description string
		if i < len(aeroParts) {
			name = aeroParts[i].name
			description = aeroParts[i].description
		} else {
			category := pick(rng, subsystems)
			component := pick(rng, []string{"Module", "Assembly", "Unit", "Controller", "Sensor", "Actuator", "Valve", "Harness"})
			name = category + " " + component
			description = fmt.Sprintf(
				"%s system %s designed for commercial aircraft applications with FAA certification.",
				category, strings.ToLower(component),
			)
		}

		parts = append(parts, Part{
			ID:             uuid.New(),
			Number:         fmt.Sprintf("AN%04d", i+1000),
			Name:           name,
			Description:    description,
			Version:        partVersion(rng),
			State:          pick(rng, partStates),
			CreatedBy:      f.Name(),
			CreatedDate:    f.DateRange(now.AddDate(-2, 0, 0), now.AddDate(0, -6, 0)),
			ModifiedDate:   f.DateRange(now.AddDate(0, 0, -30), now),
			Classification: pick(rng, []string{"avionics", "mechanical", "electrical", "hydraulic", "structural", "propulsion"}),
		})
	}

	return parts
}

func partVersion(rng *rand.Rand) string {
	return fmt.Sprintf("%s.%d", pick(rng, []string{"A", "B", "C"}), intBetween(rng, 1, 5))
}

// generateChangeNotices fabricates engineering change notices referencing
// generated part numbers as affected parts.
func generateChangeNotices(rng *rand.Rand, f *gofakeit.Faker, parts []Part, seeded bool) []ChangeNotice {
	now := time.Now()

	catalog := aeroChangeNotices
	prefix := "ECN-2024"
	count := intBetween(rng, 4, 6)

	if seeded {
		catalog = goesChangeNotices
		prefix = "GOES-ECN-2024"
		count = len(goesChangeNotices)
	}

	notices := make([]ChangeNotice, 0, count)

	for i := 0; i < count; i++ {
		var title, description string
		if i < len(catalog) {
			title = catalog[i].title
			description = catalog[i].description
		} else {
			system := pick(rng, subsystems)
			change := pick(rng, []string{"Update", "Modification", "Enhancement", "Replacement", "Upgrade"})
			title = fmt.Sprintf("%s System %s", system, change)
			description = fmt.Sprintf(
				"Engineering change notice for %s system %s to address performance requirements and certification compliance.",
				strings.ToLower(system), strings.ToLower(change),
			)
		}

		affected := make([]string, 0, 3)
		for j := 0; j < intBetween(rng, 1, 3); j++ {
			affected = append(affected, pick(rng, parts).Number)
		}

		notices = append(notices, ChangeNotice{
			ID:            uuid.New(),
			Number:        fmt.Sprintf("%s-%03d", prefix, i+1),
			Title:         title,
			Description:   description,
			Status:        pick(rng, ecnStatuses),
			Initiator:     f.Name(),
			CreatedDate:   f.DateRange(now.AddDate(0, -3, 0), now),
			TargetDate:    f.DateRange(now, now.AddDate(0, 6, 0)),
			AffectedParts: affected,
		})
	}

	return notices
}
