package extraction_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/loom/internal/extraction"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const mrdFixture = "3.2.7 System Standards\n" +
	"MRD69 The system shall comply with CCSDS standards for all data transmission interfaces.\n" +
	"MRD71 The ABI instrument shall provide full disk imagery with a spatial resolution of 2 km.\n" +
	"\f" +
	"3.3.1 Instrument Performance\n" +
	"MRD72 The GLM sensor shall detect lightning events with a detection efficiency of at least 70 percent.\n" +
	"\f" +
	"3.4.2 Timing Requirements\n" +
	"MRD2092 The spacecraft shall maintain attitude knowledge accuracy within 100 microradians.\n" +
	"MRD2093 The system shall timestamp all science data with accuracy better than 1 millisecond.\n"

func TestExtractMRDDocument(t *testing.T) {
	extractor := extraction.New(testLogger())
	src := extraction.NewTextSource("goes_r_mrd.txt", mrdFixture)

	reqs, err := extractor.Extract(context.Background(), src, extraction.Options{})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(reqs) != 5 {
		t.Fatalf("extracted %d requirements, expected 5", len(reqs))
	}

	expectedOrder := []string{"MRD69", "MRD71", "MRD72", "MRD2092", "MRD2093"}
	for i, id := range expectedOrder {
		if reqs[i].ID != id {
			t.Errorf("requirement %d: ID = %q, expected %q", i, reqs[i].ID, id)
		}
	}

	byID := make(map[string]extraction.Requirement)
	for _, req := range reqs {
		byID[req.ID] = req
	}

	if cat := byID["MRD69"].Category; cat != "standards" {
		t.Errorf("MRD69 category = %q, expected standards", cat)
	}
	if cat := byID["MRD71"].Category; cat != "instrument" {
		t.Errorf("MRD71 category = %q, expected instrument", cat)
	}
	if cat := byID["MRD2093"].Category; cat != "timing" {
		t.Errorf("MRD2093 category = %q, expected timing", cat)
	}

	if section := byID["MRD72"].ParentSection; section != "3.3.1 Instrument Performance" {
		t.Errorf("MRD72 parent section = %q", section)
	}

	if pri := byID["MRD71"].Priority; pri != "high" {
		t.Errorf("MRD71 priority = %q, expected high", pri)
	}

	for _, req := range reqs {
		if req.SourceDocument != "goes_r_mrd.txt" {
			t.Errorf("%s source document = %q", req.ID, req.SourceDocument)
		}
		if req.Title == "" {
			t.Errorf("%s has empty title", req.ID)
		}
	}

	if page := byID["MRD72"].SourcePage; page != 2 {
		t.Errorf("MRD72 source page = %d, expected 2", page)
	}
}

func TestExtractDeduplicatesKeepingLongerText(t *testing.T) {
	text := "4.1 Duplicated Clauses\n" +
		"MRD100 The system shall archive telemetry.\n" +
		"\f" +
		"4.1 Duplicated Clauses\n" +
		"MRD100 The system shall archive telemetry for a minimum of thirty days.\n"

	extractor := extraction.New(testLogger())
	reqs, err := extractor.Extract(context.Background(), extraction.NewTextSource("dup.txt", text), extraction.Options{})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(reqs) != 1 {
		t.Fatalf("extracted %d requirements, expected 1", len(reqs))
	}
	if !strings.Contains(reqs[0].Text, "thirty days") {
		t.Errorf("kept text %q, expected the longer variant", reqs[0].Text)
	}
}

func TestExtractDedupeEqualLengthKeepsFirst(t *testing.T) {
	text := "4.1 Duplicated Clauses\n" +
		"MRD101 The system shall record telemetry beginning at orbital noon.\n" +
		"\f" +
		"4.1 Duplicated Clauses\n" +
		"MRD101 The system shall record telemetry beginning at orbital dusk.\n"

	extractor := extraction.New(testLogger())
	reqs, err := extractor.Extract(context.Background(), extraction.NewTextSource("dup.txt", text), extraction.Options{})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(reqs) != 1 {
		t.Fatalf("extracted %d requirements, expected 1", len(reqs))
	}
	if !strings.Contains(reqs[0].Text, "noon") {
		t.Errorf("kept text %q, expected the first encountered variant", reqs[0].Text)
	}
}

func TestExtractShallSentencesGenerateIDs(t *testing.T) {
	text := "Overview\n" +
		"The system shall archive all telemetry records for a minimum of seven days.\n" +
		"The spacecraft shall downlink stored data during every ground contact.\n"

	extractor := extraction.New(testLogger())
	reqs, err := extractor.Extract(context.Background(), extraction.NewTextSource("plain.txt", text), extraction.Options{})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(reqs) != 2 {
		t.Fatalf("extracted %d requirements, expected 2", len(reqs))
	}

	for _, req := range reqs {
		if !strings.HasPrefix(req.ID, "REQ-001-") {
			t.Errorf("generated ID = %q, expected REQ-001- prefix", req.ID)
		}
	}
}

func TestExtractMaxPages(t *testing.T) {
	extractor := extraction.New(testLogger())
	src := extraction.NewTextSource("goes_r_mrd.txt", mrdFixture)

	reqs, err := extractor.Extract(context.Background(), src, extraction.Options{MaxPages: 1})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(reqs) != 2 {
		t.Fatalf("extracted %d requirements with MaxPages=1, expected 2", len(reqs))
	}
}

func TestExtractTableSource(t *testing.T) {
	src := &tableSource{
		name: "tabular.pdf",
		page: extraction.Page{
			Number: 1,
			Tables: []extraction.Table{
				{
					{"Requirement", "Description"},
					{"MRD300", "The system shall distribute products within 50 seconds of receipt."},
					{"", "continuation artifact"},
				},
			},
		},
	}

	extractor := extraction.New(testLogger())
	reqs, err := extractor.Extract(context.Background(), src, extraction.Options{})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if len(reqs) != 1 {
		t.Fatalf("extracted %d requirements, expected 1", len(reqs))
	}
	if reqs[0].ID != "MRD300" {
		t.Errorf("ID = %q, expected MRD300", reqs[0].ID)
	}
}

type tableSource struct {
	name string
	page extraction.Page
}

func (s *tableSource) Name() string    { return s.name }
func (s *tableSource) PageCount() int  { return 1 }
func (s *tableSource) Page(n int) (extraction.Page, error) {
	if n != 1 {
		return extraction.Page{}, extraction.ErrPageOutOfRange
	}
	return s.page, nil
}

func TestInterchangeRoundTrip(t *testing.T) {
	extractor := extraction.New(testLogger())
	src := extraction.NewTextSource("goes_r_mrd.txt", mrdFixture)

	reqs, err := extractor.Extract(context.Background(), src, extraction.Options{})
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	var buf bytes.Buffer
	if err := extraction.WriteDocument(&buf, extraction.NewDocument(reqs)); err != nil {
		t.Fatalf("WriteDocument() error: %v", err)
	}

	doc, err := extraction.ReadDocument(&buf)
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}

	if doc.TotalRequirements != len(reqs) {
		t.Errorf("total = %d, expected %d", doc.TotalRequirements, len(reqs))
	}
	if doc.ExtractorVersion != extraction.Version {
		t.Errorf("version = %q, expected %q", doc.ExtractorVersion, extraction.Version)
	}
	if len(doc.Requirements) != len(reqs) {
		t.Fatalf("round-trip requirement count = %d, expected %d", len(doc.Requirements), len(reqs))
	}
	if doc.Requirements[0].ID != reqs[0].ID {
		t.Errorf("round-trip first ID = %q, expected %q", doc.Requirements[0].ID, reqs[0].ID)
	}
}
