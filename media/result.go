package media

// ScanResult is the output of one enumeration and grouping pass. It is
// rebuilt from scratch on every scan and never merged across scans.
type ScanResult struct {
	TotalFiles  int      `json:"total_files"`
	TotalBytes  int64    `json:"total_bytes"`
	Groups      []*Group `json:"groups"`
	UniqueItems []*Item  `json:"unique_items"`
	Errors      []string `json:"errors,omitempty"`
}

// DuplicateCount is the number of items currently slated for removal across
// all groups.
func (r *ScanResult) DuplicateCount() int {
	var count int
	for _, g := range r.Groups {
		count += len(g.ToDelete())
	}
	return count
}

// RecoverableBytes is the space freed if every group keeps only its selected
// member.
func (r *ScanResult) RecoverableBytes() int64 {
	var total int64
	for _, g := range r.Groups {
		total += g.RecoverableBytes()
	}
	return total
}
