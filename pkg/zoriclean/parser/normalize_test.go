package parser

import "testing"

func TestNormalizeCity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Austin", "austin"},
		{"  San  Marcos  ", "san marcos"},
		{"COLLEGE STATION", "college station"},
		{"\tDenton\n", "denton"},
		{"San\t \tMarcos", "san marcos"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		result := NormalizeCity(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeCity(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestNormalizeCityIdempotent(t *testing.T) {
	inputs := []string{"Austin", "  San  Marcos  ", "COLLEGE STATION", "", "a  b   c"}
	for _, input := range inputs {
		once := NormalizeCity(input)
		twice := NormalizeCity(once)
		if once != twice {
			t.Errorf("NormalizeCity not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTargetSet(t *testing.T) {
	set := TargetSet([]string{"Austin", "austin", "  AUSTIN "})
	if len(set) != 1 {
		t.Errorf("Expected 1 entry after deduplication, got %d", len(set))
	}
	if _, ok := set["austin"]; !ok {
		t.Error("Expected normalized entry 'austin' in set")
	}
}

func TestTargetSetCorrectsMisspelling(t *testing.T) {
	set := TargetSet([]string{"San  Marcoc"})
	if _, ok := set["san marcos"]; !ok {
		t.Error("Expected misspelled 'San Marcoc' to map to 'san marcos'")
	}
	if _, ok := set["san marcoc"]; ok {
		t.Error("Misspelled form should not remain in the set")
	}
}
