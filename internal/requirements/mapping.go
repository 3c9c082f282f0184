package requirements

import (
	"encoding/json"
	"net/url"

	"github.com/google/uuid"

	"github.com/JaimeStill/loom/pkg/query"
	"github.com/JaimeStill/loom/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "requirements", "r").
	Project("id", "ID").
	Project("document_id", "DocumentID").
	Project("requirement_id", "RequirementID").
	Project("title", "Title").
	Project("text", "Text").
	Project("category", "Category").
	Project("priority", "Priority").
	Project("verification_method", "VerificationMethod").
	Project("source_page", "SourcePage").
	Project("parent_section", "ParentSection").
	Project("tags", "Tags").
	Project("generated_item_ids", "GeneratedItemIDs").
	Project("generated_issue_ids", "GeneratedIssueIDs").
	Project("extracted_at", "ExtractedAt").
	Project("updated_at", "UpdatedAt").
	Join("public", "documents", "d", "INNER JOIN", "r.document_id = d.id").
	Project("filename", "SourceDocument")

var defaultSort = query.SortField{
	Field:      "RequirementID",
	Descending: false,
}

// Filters contains optional filtering criteria for requirement queries.
// Nil fields are ignored. DocumentID, Category, Priority, and
// VerificationMethod use exact matching; RequirementID uses
// case-insensitive contains matching.
type Filters struct {
	DocumentID         *uuid.UUID `json:"document_id,omitempty"`
	RequirementID      *string    `json:"requirement_id,omitempty"`
	Category           *string    `json:"category,omitempty"`
	Priority           *string    `json:"priority,omitempty"`
	VerificationMethod *string    `json:"verification_method,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("DocumentID", f.DocumentID).
		WhereContains("RequirementID", f.RequirementID).
		WhereEquals("Category", f.Category).
		WhereEquals("Priority", f.Priority).
		WhereEquals("VerificationMethod", f.VerificationMethod)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if did := values.Get("document_id"); did != "" {
		if id, err := uuid.Parse(did); err == nil {
			f.DocumentID = &id
		}
	}

	if rid := values.Get("requirement_id"); rid != "" {
		f.RequirementID = &rid
	}

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	if p := values.Get("priority"); p != "" {
		f.Priority = &p
	}

	if vm := values.Get("verification_method"); vm != "" {
		f.VerificationMethod = &vm
	}

	return f
}

func scanRequirement(s repository.Scanner) (Requirement, error) {
	var (
		r        Requirement
		tags     []byte
		itemIDs  []byte
		issueIDs []byte
	)

	err := s.Scan(
		&r.ID,
		&r.DocumentID,
		&r.RequirementID,
		&r.Title,
		&r.Text,
		&r.Category,
		&r.Priority,
		&r.VerificationMethod,
		&r.SourcePage,
		&r.ParentSection,
		&tags,
		&itemIDs,
		&issueIDs,
		&r.ExtractedAt,
		&r.UpdatedAt,
		&r.SourceDocument,
	)
	if err != nil {
		return r, err
	}

	if r.Tags, err = decodeStringList(tags); err != nil {
		return r, err
	}
	if r.GeneratedItemIDs, err = decodeStringList(itemIDs); err != nil {
		return r, err
	}
	if r.GeneratedIssueIDs, err = decodeStringList(issueIDs); err != nil {
		return r, err
	}

	return r, nil
}

func decodeStringList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

func encodeStringList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}
