package fabrication

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Read accessors over a generated data set. All of them operate on
// immutable slices, so they are safe to call concurrently.

// FilterItems returns a page of items matching the optional free-text
// query (name or description) and item type.
func (g *Generator) FilterItems(page, size int, query, itemType string) []Item {
	items := g.Items

	if itemType != "" {
		filtered := make([]Item, 0, len(items))
		for _, item := range items {
			if item.ItemType == itemType {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := make([]Item, 0, len(items))
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), q) ||
				strings.Contains(strings.ToLower(item.Description), q) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	return paginate(items, page, size)
}

// RelationshipsFor returns relationships touching the given item, or all
// relationships when itemID is nil.
func (g *Generator) RelationshipsFor(itemID *uuid.UUID) []ItemRelationship {
	if itemID == nil {
		return g.Relationships
	}

	out := make([]ItemRelationship, 0)
	for _, rel := range g.Relationships {
		if rel.FromItem == *itemID || rel.ToItem == *itemID {
			out = append(out, rel)
		}
	}
	return out
}

// FilterIssues returns a page of issues matching the optional summary
// query and status.
func (g *Generator) FilterIssues(page, size int, query, status string) []Issue {
	issues := g.Issues

	if status != "" {
		filtered := make([]Issue, 0, len(issues))
		for _, issue := range issues {
			if issue.Status == status {
				filtered = append(filtered, issue)
			}
		}
		issues = filtered
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := make([]Issue, 0, len(issues))
		for _, issue := range issues {
			if strings.Contains(strings.ToLower(issue.Summary), q) {
				filtered = append(filtered, issue)
			}
		}
		issues = filtered
	}

	return paginate(issues, page, size)
}

// LinksFor returns issue links touching the given issue, or all links
// when issueID is nil.
func (g *Generator) LinksFor(issueID *uuid.UUID) []IssueLink {
	if issueID == nil {
		return g.IssueLinks
	}

	out := make([]IssueLink, 0)
	for _, link := range g.IssueLinks {
		if link.IssueID == *issueID || link.LinkedIssueID == *issueID {
			out = append(out, link)
		}
	}
	return out
}

// FilterParts returns a page of parts matching the optional name or part
// number query.
func (g *Generator) FilterParts(page, size int, query string) []Part {
	parts := g.Parts

	if query != "" {
		q := strings.ToLower(query)
		filtered := make([]Part, 0, len(parts))
		for _, part := range parts {
			if strings.Contains(strings.ToLower(part.Name), q) ||
				strings.Contains(strings.ToLower(part.Number), q) {
				filtered = append(filtered, part)
			}
		}
		parts = filtered
	}

	return paginate(parts, page, size)
}

// BOMFor returns BOM rows under the given parent part number, or the full
// BOM when parent is empty.
func (g *Generator) BOMFor(parent string) []BOMEntry {
	if parent == "" {
		return g.BOM
	}

	out := make([]BOMEntry, 0)
	for _, entry := range g.BOM {
		if entry.ParentPart == parent {
			out = append(out, entry)
		}
	}
	return out
}

// FilterChangeNotices returns change notices, optionally by status.
func (g *Generator) FilterChangeNotices(status string) []ChangeNotice {
	if status == "" {
		return g.ChangeNotices
	}

	out := make([]ChangeNotice, 0)
	for _, ecn := range g.ChangeNotices {
		if ecn.Status == status {
			out = append(out, ecn)
		}
	}
	return out
}

// EmailsSince returns emails sent at or after the given time, or all
// emails when since is nil.
func (g *Generator) EmailsSince(since *time.Time) []Email {
	if since == nil {
		return g.Emails
	}

	out := make([]Email, 0)
	for _, email := range g.Emails {
		if !email.SentDate.Before(*since) {
			out = append(out, email)
		}
	}
	return out
}

// CalendarSince returns calendar messages sent at or after the given
// time, or all messages when since is nil.
func (g *Generator) CalendarSince(since *time.Time) []CalendarMessage {
	if since == nil {
		return g.Calendar
	}

	out := make([]CalendarMessage, 0)
	for _, msg := range g.Calendar {
		if !msg.SentDate.Before(*since) {
			out = append(out, msg)
		}
	}
	return out
}
