package limits

// Memory safety limits to prevent unbounded growth and OOM

const (
	// MaxScanRows is the maximum number of rows that can be scanned into memory
	// This prevents OOM when querying very large datasets
	MaxScanRows = 100000

	// MaxInputLength bounds a single line read by the console
	MaxInputLength = 64 * 1024
)
