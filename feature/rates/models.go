package rates

// Upload is one received rate-sheet file, read fully into memory so the
// run can continue after the HTTP request is gone.
type Upload struct {
	Name string
	Data []byte
}

// ComparisonResponse acknowledges an accepted comparison run.
type ComparisonResponse struct {
	JobID  string `json:"job_id"`
	Vendor string `json:"vendor"`
	Status string `json:"status"`
}

// VendorInfo describes one registered vendor for API consumers, including
// the sheet order expected when the vendor publishes one file per sheet.
type VendorInfo struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Strategy    string   `json:"strategy"`
	Files       int      `json:"files"`
	Sheets      []string `json:"sheets"`
}
