package models

// Summary reports the outcome of a cleaning run.
type Summary struct {
	// Kept is the number of input data rows written to the output.
	Kept int `json:"kept"`
	// Total is the number of input data rows scanned, kept or not.
	Total int `json:"total"`
	// OutputPath is the resolved path of the written output file.
	OutputPath string `json:"output_path"`
}
