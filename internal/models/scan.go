package models

// ScanSummary aggregates counters accumulated over one scan.
type ScanSummary struct {
	FilesScanned int `json:"files_scanned"` // Every entry visited, before filtering
	OKFiles      int `json:"ok_files"`      // Candidate files without any marker
	Filtered     int `json:"filtered"`      // Marker lines dropped by the needle
}

// ScanResult is the outcome of scanning one root directory.
type ScanResult struct {
	Root        string       `json:"root"`
	Annotations []Annotation `json:"annotations"` // Traversal order
	Summary     ScanSummary  `json:"summary"`
	Skipped     []string     `json:"skipped,omitempty"` // Unreadable files passed over when continuing on error
}

// CountByKind returns how many annotations of each kind the result holds.
func (r *ScanResult) CountByKind() map[AnnotationKind]int {
	counts := make(map[AnnotationKind]int, len(AnnotationKinds))
	for _, a := range r.Annotations {
		counts[a.Kind]++
	}
	return counts
}
