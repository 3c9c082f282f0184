package documents

import "testing"

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"GOES-R_Series_MRD_v3.pdf", "MRD"},
		{"payload_srd_final.pdf", "SRD"},
		{"ground_icd_rev2.pdf", "ICD"},
		{"mission_requirements.txt", "Requirements"},
		{"thermal_specification.pdf", "Specification"},
		{"notes.pdf", "Document"},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			if got := detectDocumentType(tc.filename); got != tc.expected {
				t.Errorf("detectDocumentType(%q) = %q, expected %q", tc.filename, got, tc.expected)
			}
		})
	}
}

func TestDetectMission(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"GOES-R_Series_MRD_v3.pdf", "GOES-R"},
		{"goes_east_icd.pdf", "GOES-R"},
		{"JWST_sunshield_reqs.pdf", "JWST"},
		{"artemis_hls_srd.pdf", "Artemis"},
		{"orion_eclss.pdf", "Orion"},
		{"station_notes.pdf", "Unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			if got := detectMission(tc.filename); got != tc.expected {
				t.Errorf("detectMission(%q) = %q, expected %q", tc.filename, got, tc.expected)
			}
		})
	}
}
