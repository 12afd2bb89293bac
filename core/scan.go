package core

// InitialCursor starts a scan; a reply carrying it again ends the scan.
const InitialCursor = "0"

// ScanResult is one page of a SCAN-family command.
type ScanResult[T any] struct {
	Cursor  string
	Results T
}

// NewScanResult returns a page with the given cursor.
func NewScanResult[T any](cursor string, results T) ScanResult[T] {
	return ScanResult[T]{Cursor: cursor, Results: results}
}

// IsCompleted reports whether the cursor returned to InitialCursor.
func (r ScanResult[T]) IsCompleted() bool {
	return r.Cursor == InitialCursor
}
