// Package fabrication generates synthetic engineering-tool artifacts for
// demos: requirement items, test cases, issues, parts, change notices, and
// messages, cross-linked with deliberate traceability gaps. Generation can
// optionally be seeded from requirements stored by the extraction pipeline
// so the fabricated data traces back to real document content.
package fabrication

import (
	"time"

	"github.com/google/uuid"
)

// Item type values.
const (
	ItemTypeRequirement = "requirement"
	ItemTypeTestCase    = "test_case"
)

// Item is a requirement or test case in the fabricated item tracker.
type Item struct {
	ID           uuid.UUID      `json:"id"`
	GlobalID     string         `json:"global_id"`
	DocumentKey  string         `json:"document_key"`
	ItemType     string         `json:"item_type"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Status       string         `json:"status"`
	CreatedDate  time.Time      `json:"created_date"`
	ModifiedDate time.Time      `json:"modified_date"`
	CreatedBy    string         `json:"created_by"`
	ModifiedBy   string         `json:"modified_by"`
	Fields       map[string]any `json:"fields"`
}

// ItemRelationship links two items, typically a requirement to the test
// case that verifies it.
type ItemRelationship struct {
	ID               uuid.UUID `json:"id"`
	FromItem         uuid.UUID `json:"from_item"`
	ToItem           uuid.UUID `json:"to_item"`
	RelationshipType string    `json:"relationship_type"`
	CreatedDate      time.Time `json:"created_date"`
}

// Issue is a fabricated engineering issue.
type Issue struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	IssueType   string    `json:"issue_type"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Assignee    *string   `json:"assignee"`
	Reporter    string    `json:"reporter"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
	Labels      []string  `json:"labels"`
}

// IssueLink connects two issues.
type IssueLink struct {
	ID            uuid.UUID `json:"id"`
	IssueID       uuid.UUID `json:"issue_id"`
	LinkedIssueID uuid.UUID `json:"linked_issue_id"`
	LinkType      string    `json:"link_type"`
}

// Part is a fabricated PLM part record.
type Part struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Version        string    `json:"version"`
	State          string    `json:"state"`
	CreatedBy      string    `json:"created_by"`
	CreatedDate    time.Time `json:"created_date"`
	ModifiedDate   time.Time `json:"modified_date"`
	Classification string    `json:"classification"`
}

// BOMEntry is a parent/child row in a fabricated bill of materials.
type BOMEntry struct {
	ID         uuid.UUID `json:"id"`
	ParentPart string    `json:"parent_part"`
	ChildPart  string    `json:"child_part"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	FindNumber string    `json:"find_number"`
}

// ChangeNotice is a fabricated engineering change notice.
type ChangeNotice struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Initiator     string    `json:"initiator"`
	CreatedDate   time.Time `json:"created_date"`
	TargetDate    time.Time `json:"target_date"`
	AffectedParts []string  `json:"affected_parts"`
}

// Email is a fabricated email message.
type Email struct {
	ID              uuid.UUID `json:"id"`
	GlobalID        string    `json:"global_id"`
	Subject         string    `json:"subject"`
	Sender          string    `json:"sender"`
	Recipients      []string  `json:"recipients"`
	Body            string    `json:"body"`
	SentDate        time.Time `json:"sent_date"`
	Attachments     []string  `json:"attachments"`
	LinkedArtifacts []string  `json:"linked_artifacts"`
}

// CalendarMessage is a fabricated calendar or meeting message.
type CalendarMessage struct {
	ID              uuid.UUID `json:"id"`
	GlobalID        string    `json:"global_id"`
	Subject         string    `json:"subject"`
	Sender          string    `json:"sender"`
	Recipients      []string  `json:"recipients"`
	Body            string    `json:"body"`
	SentDate        time.Time `json:"sent_date"`
	Importance      string    `json:"importance"`
	HasAttachments  bool      `json:"has_attachments"`
	LinkedArtifacts []string  `json:"linked_artifacts"`
	MeetingRequest  bool      `json:"meeting_request"`
}

// ArtifactRef identifies a fabricated artifact across source families.
type ArtifactRef struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Source string `json:"source"`
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
	URL    string `json:"url,omitempty"`
}

// PulseItem is one entry in the aggregated change feed.
type PulseItem struct {
	ID            uuid.UUID      `json:"id"`
	Artifact      ArtifactRef    `json:"artifact_ref"`
	ChangeType    string         `json:"change_type"`
	ChangeSummary string         `json:"change_summary"`
	Timestamp     time.Time      `json:"timestamp"`
	Author        string         `json:"author"`
	Metadata      map[string]any `json:"metadata"`
}

// ImpactNode is one node in a fabricated impact analysis tree.
type ImpactNode struct {
	Artifact         ArtifactRef  `json:"artifact_ref"`
	ImpactLevel      int          `json:"impact_level"`
	RelationshipType string       `json:"relationship_type"`
	Children         []ImpactNode `json:"children"`
}

// ImpactResult is the full result of a fabricated impact analysis.
type ImpactResult struct {
	Root          ArtifactRef  `json:"root_artifact"`
	Depth         int          `json:"depth"`
	TotalImpacted int          `json:"total_impacted"`
	ImpactTree    []ImpactNode `json:"impact_tree"`
	GapCount      int          `json:"gap_count"`
}
