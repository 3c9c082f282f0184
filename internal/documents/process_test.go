package documents

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

// fakeProcessStore drives runExtraction without a database, recording the
// status transitions it is asked to perform.
type fakeProcessStore struct {
	doc          Document
	extractCount int
	extractErr   error

	transitions  []string
	extractCalls int
	failedMsg    string
}

func (f *fakeProcessStore) Find(_ context.Context, _ uuid.UUID) (*Document, error) {
	doc := f.doc
	return &doc, nil
}

func (f *fakeProcessStore) markProcessing(_ context.Context, _ uuid.UUID) error {
	f.transitions = append(f.transitions, ProcessingInProgress)
	return nil
}

func (f *fakeProcessStore) markCompleted(_ context.Context, _ uuid.UUID, _ int) error {
	f.transitions = append(f.transitions, ProcessingCompleted)
	return nil
}

func (f *fakeProcessStore) markFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.transitions = append(f.transitions, ProcessingFailed)
	f.failedMsg = message
	return nil
}

func (f *fakeProcessStore) extract(_ context.Context, _ *Document) (int, error) {
	f.extractCalls++
	return f.extractCount, f.extractErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRunExtractionCompletes(t *testing.T) {
	store := &fakeProcessStore{
		doc:          Document{ID: uuid.New(), ExtractionStatus: ExtractionNotStarted},
		extractCount: 12,
	}

	result, err := runExtraction(context.Background(), store, discardLogger(), store.doc.ID, false)
	if err != nil {
		t.Fatalf("runExtraction: %v", err)
	}

	if result.Status != ResultCompleted {
		t.Errorf("status = %q, expected %q", result.Status, ResultCompleted)
	}
	if result.RequirementsExtracted != 12 {
		t.Errorf("count = %d, expected 12", result.RequirementsExtracted)
	}
	if store.extractCalls != 1 {
		t.Errorf("extract calls = %d, expected 1", store.extractCalls)
	}

	expected := []string{ProcessingInProgress, ProcessingCompleted}
	if len(store.transitions) != len(expected) {
		t.Fatalf("transitions = %v, expected %v", store.transitions, expected)
	}
	for i, status := range expected {
		if store.transitions[i] != status {
			t.Errorf("transition %d = %q, expected %q", i, store.transitions[i], status)
		}
	}
}

func TestRunExtractionAlreadyCompleted(t *testing.T) {
	store := &fakeProcessStore{
		doc: Document{
			ID:                    uuid.New(),
			ExtractionStatus:      ExtractionCompleted,
			RequirementsExtracted: 37,
		},
	}

	result, err := runExtraction(context.Background(), store, discardLogger(), store.doc.ID, false)
	if err != nil {
		t.Fatalf("runExtraction: %v", err)
	}

	if result.Status != ResultAlreadyCompleted {
		t.Errorf("status = %q, expected %q", result.Status, ResultAlreadyCompleted)
	}
	if result.RequirementsExtracted != 37 {
		t.Errorf("count = %d, expected cached 37", result.RequirementsExtracted)
	}
	if store.extractCalls != 0 {
		t.Errorf("extract calls = %d, expected 0", store.extractCalls)
	}
	if len(store.transitions) != 0 {
		t.Errorf("transitions = %v, expected none", store.transitions)
	}
}

func TestRunExtractionForceRerunsCompleted(t *testing.T) {
	store := &fakeProcessStore{
		doc: Document{
			ID:                    uuid.New(),
			ExtractionStatus:      ExtractionCompleted,
			RequirementsExtracted: 37,
		},
		extractCount: 41,
	}

	result, err := runExtraction(context.Background(), store, discardLogger(), store.doc.ID, true)
	if err != nil {
		t.Fatalf("runExtraction: %v", err)
	}

	if result.Status != ResultCompleted {
		t.Errorf("status = %q, expected %q", result.Status, ResultCompleted)
	}
	if result.RequirementsExtracted != 41 {
		t.Errorf("count = %d, expected fresh 41", result.RequirementsExtracted)
	}
	if store.extractCalls != 1 {
		t.Errorf("extract calls = %d, expected 1", store.extractCalls)
	}
}

func TestRunExtractionCapturesFailure(t *testing.T) {
	store := &fakeProcessStore{
		doc:        Document{ID: uuid.New(), ExtractionStatus: ExtractionNotStarted},
		extractErr: errors.New("download document blob: connection refused"),
	}

	result, err := runExtraction(context.Background(), store, discardLogger(), store.doc.ID, false)
	if err != nil {
		t.Fatalf("runExtraction: failures report through the result, got error %v", err)
	}

	if result.Status != ResultFailed {
		t.Errorf("status = %q, expected %q", result.Status, ResultFailed)
	}
	if result.Error != "download document blob: connection refused" {
		t.Errorf("error message = %q", result.Error)
	}
	if store.failedMsg != result.Error {
		t.Errorf("recorded failure = %q, expected %q", store.failedMsg, result.Error)
	}

	expected := []string{ProcessingInProgress, ProcessingFailed}
	if len(store.transitions) != len(expected) {
		t.Fatalf("transitions = %v, expected %v", store.transitions, expected)
	}
	for i, status := range expected {
		if store.transitions[i] != status {
			t.Errorf("transition %d = %q, expected %q", i, store.transitions[i], status)
		}
	}
}

func TestRunExtractionNoRequirements(t *testing.T) {
	store := &fakeProcessStore{
		doc:          Document{ID: uuid.New(), ExtractionStatus: ExtractionNotStarted},
		extractCount: 0,
	}

	result, err := runExtraction(context.Background(), store, discardLogger(), store.doc.ID, false)
	if err != nil {
		t.Fatalf("runExtraction: %v", err)
	}

	if result.Status != ResultNoRequirements {
		t.Errorf("status = %q, expected %q", result.Status, ResultNoRequirements)
	}
	if result.RequirementsExtracted != 0 {
		t.Errorf("count = %d, expected 0", result.RequirementsExtracted)
	}
}
