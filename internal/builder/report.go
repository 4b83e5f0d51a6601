package builder

// Report holds the size statistics of a build
type Report struct {
	Files        int
	OriginalSize int
	FinalSize    int
}

// Add merges another report into r
func (r *Report) Add(other *Report) {
	r.Files += other.Files
	r.OriginalSize += other.OriginalSize
	r.FinalSize += other.FinalSize
}

// Reduction returns the size reduction as a percentage of the original.
// An empty original reports no reduction.
func (r *Report) Reduction() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return (1 - float64(r.FinalSize)/float64(r.OriginalSize)) * 100
}
