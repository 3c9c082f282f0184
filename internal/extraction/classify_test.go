package extraction

import (
	"slices"
	"testing"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "standards keywords dominate",
			text:     "The system shall comply with CCSDS standards for data transmission.",
			expected: "standards",
		},
		{
			name:     "instrument keywords",
			text:     "The ABI instrument shall provide full disk imagery.",
			expected: "instrument",
		},
		{
			name:     "tie resolves to earlier table entry",
			text:     "The spacecraft shall maintain attitude knowledge accuracy within limits.",
			expected: "accuracy",
		},
		{
			name:     "timing outranks single accuracy hit",
			text:     "The system shall timestamp science data with accuracy better than 1 millisecond.",
			expected: "timing",
		},
		{
			name:     "no keywords",
			text:     "The widget shall be painted blue.",
			expected: "general",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := categorize(tc.text); got != tc.expected {
				t.Errorf("categorize() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestDeterminePriority(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "critical keyword wins",
			text:     "The system shall perform safety monitoring of all subsystems.",
			expected: "critical",
		},
		{
			name:     "keyword precedence over verb fallback",
			text:     "The primary channel shall remain active.",
			expected: "high",
		},
		{
			name:     "shall fallback",
			text:     "The instrument shall produce imagery.",
			expected: "high",
		},
		{
			name:     "should fallback",
			text:     "The archive should retain products for seven days.",
			expected: "medium",
		},
		{
			name:     "no indicators",
			text:     "The ground segment processes telemetry.",
			expected: "medium",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := determinePriority(tc.text); got != tc.expected {
				t.Errorf("determinePriority() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestVerificationMethod(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"explicit test", "Verified by acceptance testing.", "test"},
		{"analysis", "Compliance confirmed through thermal analysis.", "analysis"},
		{"inspection", "Confirmed by design review.", "inspection"},
		{"demonstration", "The contractor will show end-to-end demonstration.", "demonstration"},
		{"default", "The system shall operate continuously.", "test"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := verificationMethod(tc.text); got != tc.expected {
				t.Errorf("verificationMethod() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestExtractTags(t *testing.T) {
	text := "The system shall timestamp science data with accuracy better than 1 millisecond of real time."
	tags := extractTags(text)

	for _, expected := range []string{"accuracy", "timing"} {
		if !slices.Contains(tags, expected) {
			t.Errorf("extractTags() = %v, missing %q", tags, expected)
		}
	}
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "shall clause yields subject-action",
			text:     "The ABI instrument shall provide full disk imagery.",
			expected: "ABI instrument - provide",
		},
		{
			name:     "leading article stripped",
			text:     "The system shall comply with standards.",
			expected: "system - comply",
		},
		{
			name:     "fallback to first sentence",
			text:     "Telemetry archive retention policy. Additional detail follows.",
			expected: "Telemetry archive retention policy",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := generateTitle(tc.text); got != tc.expected {
				t.Errorf("generateTitle() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestGenerateTitleTruncates(t *testing.T) {
	long := "The extremely verbose ground processing and distribution subsystem for environmental data records shall deliver products"
	title := generateTitle(long)

	if len(title) > maxTitleLength {
		t.Errorf("title length = %d, expected <= %d", len(title), maxTitleLength)
	}
}

func TestIsValidRequirement(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"valid shall clause", "The system shall comply with standards.", true},
		{"missing indicator", "The system complies with standards.", false},
		{"bare section number", "3.2.7", false},
		{"all caps heading", "SYSTEM REQUIREMENTS SHALL", false},
		{"too short", "It shall work.", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isValidRequirement(tc.text); got != tc.expected {
				t.Errorf("isValidRequirement(%q) = %v, expected %v", tc.text, got, tc.expected)
			}
		})
	}
}

func TestCleanRequirementText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "collapses whitespace",
			text:     "The  system   shall\n operate.",
			expected: "The system shall operate.",
		},
		{
			name:     "fixes doubled words",
			text:     "The system shall shall monitor the the link.",
			expected: "The system shall monitor the link.",
		},
		{
			name:     "trims edge artifacts",
			text:     "-- The system shall operate.;;",
			expected: "The system shall operate.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanRequirementText(tc.text); got != tc.expected {
				t.Errorf("cleanRequirementText() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestNormalizePageText(t *testing.T) {
	raw := "Page 3 of 120\nGOES-R Series MRD Rev 2019\n3.2.7  System   Standards\n\n|||\nMRD69 The system shall comply."
	got := normalizePageText(raw)

	expected := "3.2.7 System Standards\nMRD69 The system shall comply."
	if got != expected {
		t.Errorf("normalizePageText() = %q, expected %q", got, expected)
	}
}
