package models

// TagFilter is the advanced multi-level include/exclude filter.
// Clauses are AND-combined across levels; names within one include list
// are OR-combined.
type TagFilter struct {
	L1Include []string `json:"l1_include,omitempty"`
	L1Exclude []string `json:"l1_exclude,omitempty"`
	L2Include []string `json:"l2_include,omitempty"`
	L2Exclude []string `json:"l2_exclude,omitempty"`
	L3Include []string `json:"l3_include,omitempty"`
}

// IsEmpty reports whether the filter constrains nothing; an empty filter
// is equivalent to the unfiltered listing.
func (f *TagFilter) IsEmpty() bool {
	return len(f.L1Include) == 0 &&
		len(f.L1Exclude) == 0 &&
		len(f.L2Include) == 0 &&
		len(f.L2Exclude) == 0 &&
		len(f.L3Include) == 0
}
