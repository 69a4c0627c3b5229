package parser

import "testing"

func TestResolveRegionColumn(t *testing.T) {
	idx, ok := ResolveRegionColumn([]string{"RegionID", "RegionName", "StateName"})
	if !ok {
		t.Fatal("Expected RegionName to be found")
	}
	if idx != 1 {
		t.Errorf("Expected index 1, got %d", idx)
	}

	if _, ok := ResolveRegionColumn([]string{"RegionID", "StateName"}); ok {
		t.Error("Expected RegionName lookup to fail")
	}

	// Match is exact, not case-insensitive.
	if _, ok := ResolveRegionColumn([]string{"regionname"}); ok {
		t.Error("Expected lowercase header not to match")
	}
}

func TestResolveDateStart(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected int
		found    bool
	}{
		{
			name:     "after CountyName",
			header:   []string{"RegionName", "CountyName", "2020-01-31", "2020-02-29"},
			expected: 2,
			found:    true,
		},
		{
			name:     "pattern fallback",
			header:   []string{"RegionName", "State", "2020-01-31", "2020-02-29"},
			expected: 2,
			found:    true,
		},
		{
			name:     "CountyName wins over earlier date-shaped column",
			header:   []string{"2019-12-31", "RegionName", "CountyName", "2020-01-31"},
			expected: 3,
			found:    true,
		},
		{
			name:   "no boundary",
			header: []string{"RegionName", "State", "Population"},
			found:  false,
		},
	}

	for _, tt := range tests {
		idx, ok := ResolveDateStart(tt.header)
		if ok != tt.found {
			t.Errorf("%s: found = %v, expected %v", tt.name, ok, tt.found)
			continue
		}
		if ok && idx != tt.expected {
			t.Errorf("%s: index = %d, expected %d", tt.name, idx, tt.expected)
		}
	}
}

func TestIsISODateLayout(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2020-01-31", true},
		{"1999-12-01", true},
		{"2020/01/31", false},
		{"2020-1-31", false},
		{"2020-01-311", false},
		{"CountyName", false},
		{"", false},
	}

	for _, tt := range tests {
		if result := IsISODateLayout(tt.input); result != tt.expected {
			t.Errorf("IsISODateLayout(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
