package parser

const (
	// RegionColumn is the key column used to decide row inclusion.
	RegionColumn = "RegionName"
	// countyColumn is the last metadata column in the wide Zillow layout;
	// date columns start immediately after it.
	countyColumn = "CountyName"
)

// ResolveRegionColumn returns the index of the RegionName column in the
// header, matched by exact name. The second return value is false when the
// column is absent.
func ResolveRegionColumn(header []string) (int, bool) {
	for i, col := range header {
		if col == RegionColumn {
			return i, true
		}
	}
	return 0, false
}

// ResolveDateStart returns the index of the first date-valued column in the
// header. It prefers the column immediately after CountyName and falls back
// to scanning for the first ISO-shaped label. The second return value is
// false when neither strategy finds a boundary.
func ResolveDateStart(header []string) (int, bool) {
	for i, col := range header {
		if col == countyColumn {
			return i + 1, true
		}
	}
	for i, col := range header {
		if IsISODateLayout(col) {
			return i, true
		}
	}
	return 0, false
}
