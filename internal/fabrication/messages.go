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

const messageCount = 10

// generateEmails fabricates email traffic. Seeded runs tie most messages
// to a stored requirement so the feed reads like mission correspondence.
func generateEmails(rng *rand.Rand, f *gofakeit.Faker, seeds []requirements.Requirement) []Email {
	now := time.Now()
	emails := make([]Email, 0, messageCount)
	seeded := len(seeds) > 0

	domains := emailDomains
	if seeded {
		domains = seededEmailDomains
	}

	for i := 0; i < messageCount; i++ {
		var subject, body string
		var attachments []string

		switch {
		case seeded && rng.Float64() > 0.3:
			req := pick(rng, seeds)
			subject = fmt.Sprintf(pick(rng, seededEmailTemplates), req.RequirementID)
			body = fmt.Sprintf(
				"This email concerns requirement %s: %s\n\nCurrent status and recent activities related to this requirement.\n\n%s\n\nPlease review and provide feedback by COB Friday.",
				req.RequirementID, req.Title, truncate(req.Text, 300),
			)
		case seeded:
			subject = fmt.Sprintf("GOES-R Mission Update - Weekly Status Report #%d", i+1)
			body = "Weekly mission status update with latest developments and upcoming milestones."
		case i < len(aeroEmailSubjects):
			subject = aeroEmailSubjects[i]
			body = pick(rng, aeroEmailBodies) + " " + f.Paragraph(1, 3, 12, " ")
			attachments = sampleOf(rng, emailAttachments, rng.IntN(3))
		default:
			subject = f.Sentence(8)
			body = f.Paragraph(1, 4, 14, " ")
		}

		recipients := make([]string, 0, 3)
		for j := 0; j < intBetween(rng, 1, 3); j++ {
			recipients = append(recipients, emailAddress(f, pick(rng, domains)))
		}

		emails = append(emails, Email{
			ID:              uuid.New(),
			GlobalID:        fmt.Sprintf("EMAIL-%03d", i+1),
			Subject:         subject,
			Sender:          emailAddress(f, pick(rng, domains)),
			Recipients:      recipients,
			Body:            body,
			SentDate:        f.DateRange(now.AddDate(0, 0, -14), now),
			Attachments:     attachments,
			LinkedArtifacts: []string{},
		})
	}

	return emails
}

func emailAddress(f *gofakeit.Faker, domain string) string {
	return fmt.Sprintf(
		"%s.%s@%s",
		strings.ToLower(f.FirstName()),
		strings.ToLower(f.LastName()),
		domain,
	)
}

// generateCalendar fabricates meeting and message traffic.
func generateCalendar(rng *rand.Rand, f *gofakeit.Faker, seeds []requirements.Requirement) []CalendarMessage {
	now := time.Now()
	messages := make([]CalendarMessage, 0, messageCount)
	seeded := len(seeds) > 0

	people := aeroTeamMembers
	if seeded {
		people = seededTeamMembers
	}

	for i := 0; i < messageCount; i++ {
		var subject, body string
		meeting := true

		switch {
		case seeded && rng.Float64() > 0.4:
			req := pick(rng, seeds)
			subject = formatTemplate(pick(rng, seededMeetingTemplates), req.RequirementID)
			body = fmt.Sprintf(
				"Meeting to discuss requirement %s: %s\n\nAgenda:\n- Review current implementation status\n- Discuss test approach\n- Address technical issues\n\nLocation: Building 5, Conference Room A\nDuration: 1 hour",
				req.RequirementID, req.Title,
			)
		case seeded:
			subject = formatTemplate(pick(rng, seededMeetingTemplates), "General")
			body = "Regular team meeting to discuss project status and coordination."
		case i < len(aeroCalendarSubjects):
			subject = aeroCalendarSubjects[i]
			body = pick(rng, aeroMeetingBodies) + " Location: Building 5, Conference Room A"
		default:
			subject = f.Sentence(7)
			body = f.Paragraph(1, 3, 12, " ")
			meeting = rng.Float64() > 0.6
		}

		importance := "normal"
		lowered := strings.ToLower(subject)
		if strings.Contains(lowered, "certification") || strings.Contains(lowered, "safety") || strings.Contains(lowered, "review") {
			importance = pick(rng, []string{"normal", "high"})
		}

		messages = append(messages, CalendarMessage{
			ID:              uuid.New(),
			GlobalID:        fmt.Sprintf("CAL-MSG-%03d", i+1),
			Subject:         subject,
			Sender:          pick(rng, people),
			Recipients:      sampleOf(rng, people, intBetween(rng, 2, 4)),
			Body:            body,
			SentDate:        f.DateRange(now.AddDate(0, 0, -21), now),
			Importance:      importance,
			HasAttachments:  rng.Float64() > 0.6,
			LinkedArtifacts: []string{},
			MeetingRequest:  meeting,
		})
	}

	return messages
}

// formatTemplate applies the argument only when the template has a verb
// slot; some templates are fixed strings.
func formatTemplate(template, arg string) string {
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, arg)
	}
	return template
}
