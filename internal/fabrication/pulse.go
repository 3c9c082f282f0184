package fabrication

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pulse source identifiers.
const (
	SourceItems    = "items"
	SourceIssues   = "issues"
	SourceParts    = "parts"
	SourceEmail    = "email"
	SourceCalendar = "calendar"
)

// buildPulse aggregates recent activity across every family into a single
// feed sorted newest first. Items and issues only appear when modified
// inside the trailing window; change notices and messages always emit.
func buildPulse(g *Generator, window time.Duration) []PulseItem {
	cutoff := time.Now().Add(-window)
	var pulse []PulseItem

	for _, item := range g.Items {
		if !item.ModifiedDate.After(cutoff) {
			continue
		}

		change := "created"
		if item.CreatedDate.Before(item.ModifiedDate) {
			change = "updated"
		}

		pulse = append(pulse, PulseItem{
			ID: uuid.New(),
			Artifact: ArtifactRef{
				ID:     item.GlobalID,
				Type:   item.ItemType,
				Source: SourceItems,
				Title:  item.Name,
				Status: item.Status,
				URL:    "/api/fabrication/items/" + item.GlobalID,
			},
			ChangeType:    change,
			ChangeSummary: fmt.Sprintf("%s '%s' was %s", itemTypeLabel(item.ItemType), item.Name, change),
			Timestamp:     item.ModifiedDate,
			Author:        item.ModifiedBy,
			Metadata:      map[string]any{"document": item.DocumentKey},
		})
	}

	for _, issue := range g.Issues {
		if !issue.Updated.After(cutoff) {
			continue
		}

		change := "created"
		if issue.Created.Before(issue.Updated) {
			change = "updated"
		}

		author := issue.Reporter
		if issue.Assignee != nil {
			author = *issue.Assignee
		}

		pulse = append(pulse, PulseItem{
			ID: uuid.New(),
			Artifact: ArtifactRef{
				ID:     issue.Key,
				Type:   "issue",
				Source: SourceIssues,
				Title:  issue.Summary,
				Status: issue.Status,
				URL:    "/api/fabrication/issues/" + issue.Key,
			},
			ChangeType:    change,
			ChangeSummary: fmt.Sprintf("Issue '%s' status changed to %s", issue.Summary, issue.Status),
			Timestamp:     issue.Updated,
			Author:        author,
			Metadata:      map[string]any{"priority": issue.Priority, "type": issue.IssueType},
		})
	}

	for _, ecn := range g.ChangeNotices {
		pulse = append(pulse, PulseItem{
			ID: uuid.New(),
			Artifact: ArtifactRef{
				ID:     ecn.Number,
				Type:   "change_notice",
				Source: SourceParts,
				Title:  ecn.Title,
				Status: ecn.Status,
				URL:    "/api/fabrication/change-notices/" + ecn.Number,
			},
			ChangeType:    "status_change",
			ChangeSummary: fmt.Sprintf("Change notice '%s' status is now %s", ecn.Title, ecn.Status),
			Timestamp:     ecn.CreatedDate,
			Author:        ecn.Initiator,
			Metadata:      map[string]any{"affected_parts": len(ecn.AffectedParts)},
		})
	}

	for _, email := range g.Emails {
		pulse = append(pulse, PulseItem{
			ID: uuid.New(),
			Artifact: ArtifactRef{
				ID:     email.GlobalID,
				Type:   "email",
				Source: SourceEmail,
				Title:  email.Subject,
				Status: "received",
				URL:    "/api/fabrication/emails/" + email.GlobalID,
			},
			ChangeType:    "received",
			ChangeSummary: fmt.Sprintf("Email received: '%s'", email.Subject),
			Timestamp:     email.SentDate,
			Author:        email.Sender,
			Metadata:      map[string]any{"recipients": len(email.Recipients)},
		})
	}

	for _, msg := range g.Calendar {
		change := "received"
		summary := fmt.Sprintf("Message: '%s'", msg.Subject)
		if msg.MeetingRequest {
			change = "meeting_request"
			summary = fmt.Sprintf("Meeting request: '%s'", msg.Subject)
		}

		pulse = append(pulse, PulseItem{
			ID: uuid.New(),
			Artifact: ArtifactRef{
				ID:     msg.GlobalID,
				Type:   "calendar",
				Source: SourceCalendar,
				Title:  msg.Subject,
				Status: "received",
				URL:    "/api/fabrication/calendar/" + msg.GlobalID,
			},
			ChangeType:    change,
			ChangeSummary: summary,
			Timestamp:     msg.SentDate,
			Author:        msg.Sender,
			Metadata:      map[string]any{"importance": msg.Importance, "meeting": msg.MeetingRequest},
		})
	}

	sort.SliceStable(pulse, func(i, j int) bool {
		return pulse[i].Timestamp.After(pulse[j].Timestamp)
	})

	return pulse
}

func itemTypeLabel(itemType string) string {
	label := strings.ReplaceAll(itemType, "_", " ")
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

// PulseFilters narrows the pulse feed. Zero values mean no filtering;
// Limit applies after sorting and the other filters.
type PulseFilters struct {
	Since   *time.Time
	Sources []string
	Types   []string
	Limit   int
}

// PulseFeed returns the filtered change feed, newest first.
func (g *Generator) PulseFeed(filters PulseFilters) []PulseItem {
	sources := toSet(filters.Sources)
	types := toSet(filters.Types)

	out := make([]PulseItem, 0, len(g.Pulse))
	for _, item := range g.Pulse {
		if filters.Since != nil && item.Timestamp.Before(*filters.Since) {
			continue
		}
		if len(sources) > 0 && !sources[item.Artifact.Source] {
			continue
		}
		if len(types) > 0 && !types[item.Artifact.Type] {
			continue
		}
		out = append(out, item)
	}

	if filters.Limit > 0 && len(out) > filters.Limit {
		out = out[:filters.Limit]
	}

	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
