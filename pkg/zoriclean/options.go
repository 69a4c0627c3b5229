// Package zoriclean filters the Zillow ZORI city-level rent dataset down to
// a configurable set of cities, optionally reshaping the wide layout into a
// tidy one with explicit Date and Value columns.
package zoriclean

// Default file paths used by the CLI when no flags are given.
const (
	// DefaultInputPath is the raw Zillow ZORI city export.
	DefaultInputPath = "ZilloZoriCityRaw.csv"
	// DefaultOutputPath is where the cleaned dataset is written.
	DefaultOutputPath = "data/cleaned_zillow_zori_city.csv"
)

// DefaultCities is the city list used when the caller supplies none.
var DefaultCities = []string{"San Marcos", "Austin", "College Station", "Denton"}

// Options configures a cleaning run.
type Options struct {
	// Long selects the tidy layout with one row per city per date.
	// The default wide layout passes kept rows through verbatim.
	Long bool
	// Cities lists the target city names. Names are free-form and are
	// normalized before matching. If empty, DefaultCities is used.
	Cities []string
}

// DefaultOptions returns defaults matching the CLI's flag defaults.
func DefaultOptions() Options {
	return Options{Cities: DefaultCities}
}

// TargetCities returns the configured city list, falling back to
// DefaultCities when none were supplied.
func (o Options) TargetCities() []string {
	if len(o.Cities) == 0 {
		return DefaultCities
	}
	return o.Cities
}
